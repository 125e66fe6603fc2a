// Package server exposes waveform generation over a websocket endpoint.
//
// A client connects to /ws and sends JSON requests:
//
//	{"payload": "7ff15aa0007f", "probe": "CAN_H"}
//
// Each request is answered with either a waveform response
// ({time_points, voltage_points, total_bits, ...}) or an error payload
// ({error, kind}) where kind is one of "configuration", "parse" or
// "validation". Errors never close the connection; the client corrects its
// input and retries. Every request is served from a freshly built frame, so
// concurrent connections are independent.
//
// The server is intended for driving a browser-based plot of the waveform;
// it performs no bus I/O of any kind.
package server
