package skill

import "github.com/sukalov/lyricecho/internal/alexa"

// Intent is the closed set of turns the skill understands.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentLaunch
	IntentSessionEnded
	IntentHello
	IntentSongInfo
	IntentSearchSong
	IntentNextSong
	IntentGetLyrics
	IntentContinueListening
	IntentGetFacts
	IntentNoMoreSongs
	IntentHelp
	IntentCancelOrStop
	IntentFallback
)

// SlotLyrics is the search intent's free-text slot.
const SlotLyrics = "Lyrics"

var intentNames = map[string]Intent{
	"HelloWorldIntent":            IntentHello,
	"SongInfoIntent":              IntentSongInfo,
	"SearchSongIntent":            IntentSearchSong,
	"NextSongIntent":              IntentNextSong,
	"GetSongDetailsIntent":        IntentGetLyrics,
	"ContinueListeningIntent":     IntentContinueListening,
	"GetSongAdditionalInfoIntent": IntentGetFacts,
	"NoMoreSongsIntent":           IntentNoMoreSongs,
	"AMAZON.HelpIntent":           IntentHelp,
	"AMAZON.CancelIntent":         IntentCancelOrStop,
	"AMAZON.StopIntent":           IntentCancelOrStop,
	"AMAZON.FallbackIntent":       IntentFallback,
}

// Classify maps a request envelope onto an Intent. Intent requests with an
// unrecognised name classify as IntentUnknown.
func Classify(env *alexa.RequestEnvelope) Intent {
	switch env.Request.Type {
	case alexa.LaunchRequest:
		return IntentLaunch
	case alexa.SessionEndedRequest:
		return IntentSessionEnded
	case alexa.IntentRequest:
		return intentNames[env.Request.Intent.Name]
	}
	return IntentUnknown
}

func (i Intent) String() string {
	switch i {
	case IntentLaunch:
		return "LaunchRequest"
	case IntentSessionEnded:
		return "SessionEndedRequest"
	case IntentHello:
		return "HelloWorldIntent"
	case IntentSongInfo:
		return "SongInfoIntent"
	case IntentSearchSong:
		return "SearchSongIntent"
	case IntentNextSong:
		return "NextSongIntent"
	case IntentGetLyrics:
		return "GetSongDetailsIntent"
	case IntentContinueListening:
		return "ContinueListeningIntent"
	case IntentGetFacts:
		return "GetSongAdditionalInfoIntent"
	case IntentNoMoreSongs:
		return "NoMoreSongsIntent"
	case IntentHelp:
		return "AMAZON.HelpIntent"
	case IntentCancelOrStop:
		return "AMAZON.CancelOrStopIntent"
	case IntentFallback:
		return "AMAZON.FallbackIntent"
	default:
		return "Unknown"
	}
}
