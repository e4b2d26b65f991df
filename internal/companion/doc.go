// Package companion implements the data side of the development companion:
// a synthetic glucose curve answering get_info and an image source
// answering get_img.
package companion
