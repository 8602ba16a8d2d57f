// Package input decodes a raw terminal byte stream into logical
// keystroke events.
//
// The decoder is a small state machine fed one byte at a time. Most
// bytes classify directly; an escape byte opens a fixed three-byte
// window used to recognize the four arrow-key sequences. Unrecognized
// sequences are dropped silently and the decoder returns to its idle
// state. Decoding never fails.
package input
