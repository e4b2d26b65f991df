// Package models contains the plain data types shared between the
// synchronisation engine, the durable store, the companion adapter and the
// display layer.
package models
