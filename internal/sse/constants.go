package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Stream event types. Construction events keep their bus type names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryTypes = "types"
	QueryStar  = "star"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgFlushUnsupported   = "Response writer cannot flush, SSE unavailable"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)

// ErrMsgStreamingUnsupported is returned to clients whose connection cannot stream
const ErrMsgStreamingUnsupported = "SSE not supported"
