// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InfoPayload is the JSON document the companion returns for get_info and
// that is persisted verbatim in the snapshot file. Times are Unix
// milliseconds.
type InfoPayload struct {
	BG     *BGPayload     `json:"bg"`
	Status *StatusPayload `json:"status"`
}

// BGPayload is the reading part of [InfoPayload].
type BGPayload struct {
	Val    string `json:"val"`
	Delta  string `json:"delta,omitempty"`
	Trend  string `json:"trend,omitempty"`
	IsHigh bool   `json:"isHigh"`
	IsLow  bool   `json:"isLow"`
	Time   int64  `json:"time"`
}

// StatusPayload is the status part of [InfoPayload].
type StatusPayload struct {
	Now    int64 `json:"now"`
	IsMgdl bool  `json:"isMgdl"`
}

// ChannelRequest is one request sent to the companion.
type ChannelRequest struct {
	Method string `json:"method"`
	Params string `json:"params"`
}

// Channel methods understood by the companion.
const (
	MethodGetInfo = "get_info"
	MethodGetImg  = "get_img"
)

// ChannelError is the embedded application error marker returned inside a
// response result.
type ChannelError struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}
