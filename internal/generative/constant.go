package generative

const (
	LogPrefixRespond = "internal.generative.Respond"

	// HistoryWindow is the number of most recent turns included in a prompt.
	HistoryWindow = 5

	UserMarker      = "User: "
	AssistantMarker = "AI: "

	DefaultTemperature  = 0.8
	DefaultMaxNewTokens = 100

	MsgApology = "Sorry, something went wrong while processing your request."
)

// DefaultSystemPrompt frames the transcript-style prompt for chat models.
const DefaultSystemPrompt = "You are a friendly assistant. The user message is a chat transcript. " +
	"Write only the next reply for AI, in one or two sentences, in the user's language."
