package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrWindowSize      = Error("smoothing window must hold at least one sample")
	ErrStripLength     = Error("strip must hold at least one pixel")
	ErrChannelPairing  = Error("pairing references an unknown channel")
	ErrPairingCount    = Error("one pairing required per strip")
	ErrNilReader       = Error("channel reader not set")
	ErrNilScaler       = Error("channel scaler not set")
	ErrNilFlusher      = Error("flusher not set")
	ErrScalerRange     = Error("scaler range is empty")
	ErrPaletteEndpoint = Error("invalid palette endpoint colour")
)
