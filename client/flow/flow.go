package flow

type GameMode int

const (
	GameModeLoading GameMode = iota
	GameModePlay
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeLoading:
		return "Loading"
	case GameModePlay:
		return "Play"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}
