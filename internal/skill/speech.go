package skill

const (
	speechWelcome = "Welcome! LyricEcho can help you find songs by their lyrics and provide details. " +
		"Just say 'search' followed by the lyrics or song name you're looking for."
	speechSongInfo = "Welcome! LyricEcho can help you search for songs by their lyrics, and I can provide you " +
		"with facts about the song along with its lyrics. How can I assist you today?"
	speechHello = "Hello! Say 'search' followed by a few lyrics or a song title and I'll find the song for you."
	speechHelp  = "You can say 'search' followed by some lyrics or a song title. Once I find a match, say " +
		"'next song' for another match, 'get the lyrics' to hear them, or 'tell me the facts' to learn about the song. " +
		"How can I help?"
	speechGoodbye    = "Goodbye!"
	speechDecline    = "It was fun sharing song information with you! If you need anything else, feel free to ask. Have a good one!"
	speechFallback   = "Hmm, I'm not sure. You can say 'search' followed by some lyrics, or say Help. What would you like to do?"
	repromptFallback = "I didn't catch that. What can I help you with?"
	speechReflect    = "You just triggered %s."
	speechApology    = "Sorry, I had trouble doing what you asked. Please try again."

	speechNoLyricsGiven = "I couldn't find any lyrics. Please provide some lyrics or a song title to search."
	speechSearchFailed  = "Sorry, there was an issue while searching for the song. Please try again later."
	speechNoMatches     = "I couldn't find any matching songs. Please try another lyric."
	speechFound         = "I found '%s' by %s. Would you like to hear another song, get the lyrics, or learn more facts about this song?"
	repromptOptions     = "Would you like to hear more options?"

	speechNextMatch = "Here's another match: '%s' by %s. Would you like to hear more options?"
	speechNoMore    = "There are no more matches. Let me know if you want to search for something else."

	speechSearchFirst  = "I couldn't find any search results. Please search for a song first."
	speechNoReference  = "I'm sorry, I couldn't find the song details. Please search for a song first."
	speechNoFullLyrics = "I couldn't find the full lyrics. Please search for a song first."

	speechLyricsPreview = "Here's a part of the lyrics:\n%s\n\nWould you like to continue listening to the full lyrics?"
	repromptContinue    = "Would you like to continue listening to the full lyrics?"
	speechLyricsFailed  = "I'm sorry, I encountered an error while retrieving the song details. Please try again later."
	speechFullLyrics    = "Here are the full lyrics:\n%s\nTo know facts about the song, simply say 'tell me the facts'."

	speechFacts = "Release Date: %s\n Facts: %s\n" +
		"If you'd like information about any other song, to get the lyrics of the song just say 'get the lyrics'!"
	speechFactsFailed = "I'm sorry, I encountered an error while retrieving the song additional information. Please try again later."
)
