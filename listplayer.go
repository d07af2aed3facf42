//go:build darwin || linux

package vlc

import "github.com/sirupsen/logrus"

// PlaybackMode mirrors libvlc_playback_mode_t.
type PlaybackMode int32

const (
	PlaybackModeDefault PlaybackMode = iota
	PlaybackModeLoop
	PlaybackModeRepeat
)

// MediaListPlayer wraps a libvlc media list player handle. It plays through
// a MediaList, advancing between items on its own.
type MediaListPlayer struct {
	player uintptr
}

// NewMediaListPlayer creates a list player. Assign a list with SetMediaList
// before calling Play.
func NewMediaListPlayer(inst *Instance) (*MediaListPlayer, error) {
	if inst == nil || inst.instance == 0 {
		return nil, ErrInvalidHandle
	}
	player := vlcListPlayerNew(inst.instance)
	if player == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewMediaListPlayer",
			"error":    lastEngineError(),
		}).Warn("libvlc_media_list_player_new failed")
		return nil, ErrInvalidHandle
	}
	return &MediaListPlayer{player: player}, nil
}

// Release drops the wrapper's engine reference to the player.
func (p *MediaListPlayer) Release() {
	if p.player != 0 {
		vlcListPlayerRelease(p.player)
		p.player = 0
	}
}

// SetMediaList assigns the list to play. The player takes its own reference;
// the caller keeps ownership of l.
func (p *MediaListPlayer) SetMediaList(l *MediaList) {
	if p.player == 0 || l == nil || l.list == 0 {
		return
	}
	vlcListPlayerSetMediaList(p.player, l.list)
}

// Play starts or resumes playback from the current item.
func (p *MediaListPlayer) Play() {
	if p.player != 0 {
		vlcListPlayerPlay(p.player)
	}
}

// Stop halts playback.
func (p *MediaListPlayer) Stop() {
	if p.player != 0 {
		vlcListPlayerStop(p.player)
	}
}

// PlayItemAtIndex starts playback at a zero-based list position. Returns
// ErrMediaNotFound when the position is out of range.
func (p *MediaListPlayer) PlayItemAtIndex(pos int) error {
	if p.player == 0 {
		return ErrInvalidHandle
	}
	if vlcListPlayerPlayItemAtIndex(p.player, int32(pos)) != 0 {
		return ErrMediaNotFound
	}
	return nil
}

// Next advances to the next item. Returns ErrMediaNotFound when there is
// none.
func (p *MediaListPlayer) Next() error {
	if p.player == 0 {
		return ErrInvalidHandle
	}
	if vlcListPlayerNext(p.player) != 0 {
		return ErrMediaNotFound
	}
	return nil
}

// Previous steps back to the previous item. Returns ErrMediaNotFound when
// there is none.
func (p *MediaListPlayer) Previous() error {
	if p.player == 0 {
		return ErrInvalidHandle
	}
	if vlcListPlayerPrevious(p.player) != 0 {
		return ErrMediaNotFound
	}
	return nil
}

// IsPlaying reports whether playback is active.
func (p *MediaListPlayer) IsPlaying() bool {
	if p.player == 0 {
		return false
	}
	return vlcListPlayerIsPlaying(p.player) != 0
}

// State returns the player's engine state.
func (p *MediaListPlayer) State() MediaState {
	if p.player == 0 {
		return StateNothingSpecial
	}
	return MediaState(vlcListPlayerGetState(p.player))
}

// SetPlaybackMode selects default, loop, or single-item repeat traversal.
func (p *MediaListPlayer) SetPlaybackMode(mode PlaybackMode) {
	if p.player != 0 {
		vlcListPlayerSetPlaybackMode(p.player, int32(mode))
	}
}

// EventManager returns the player's notification channel.
func (p *MediaListPlayer) EventManager() (*EventManager, error) {
	if p.player == 0 {
		return nil, ErrInvalidHandle
	}
	manager := vlcListPlayerEventManager(p.player)
	if manager == 0 {
		return nil, ErrInvalidHandle
	}
	return &EventManager{manager: manager}, nil
}
