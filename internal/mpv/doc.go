// Package mpv implements playback.Backend on top of mpv's JSON IPC protocol.
//
// # Protocol
//
// mpv accepts newline-delimited JSON commands on a unix socket and answers
// each one with a reply carrying the same request_id. Unsolicited events are
// interleaved with replies on the same stream:
//
//	→ {"command":["loadfile","http://example.com/stream","replace"],"request_id":2}
//	← {"event":"end-file","reason":"stop"}
//	← {"error":"success","data":null,"request_id":2}
//	← {"event":"start-file","playlist_entry_id":3}
//	← {"event":"property-change","id":1,"name":"media-title","data":"Artist - Song"}
//
// A single reader goroutine splits the stream: replies are routed to the
// waiting command, events are reduced to playback.Event values and buffered
// for Poll. Commands block until their reply arrives or a two second timeout
// expires.
//
// # Lifecycle
//
// Launch runs `mpv --idle=yes --no-video --no-terminal --input-ipc-server=…`,
// waits for the socket to accept connections and subscribes to media-title.
// Close sends "quit", closes the socket and reaps the process. When the
// connection drops unexpectedly a final EventStopped is queued so the UI does
// not keep showing a stream as playing.
package mpv
