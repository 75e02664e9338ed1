//go:build !audio

package audio

import "errors"

// ErrUnavailable is returned by Init when the binary was built without sound.
var ErrUnavailable = errors.New("audio requires building with the 'audio' tag")

// Player is a silent placeholder used when the audio tag is absent.
type Player struct{}

// NewPlayer returns a silent player.
func NewPlayer() *Player { return &Player{} }

// Init always reports that sound support is missing.
func (p *Player) Init() error { return ErrUnavailable }

// Ignite is a no-op.
func (p *Player) Ignite(int) {}

// Close is a no-op.
func (p *Player) Close() {}
