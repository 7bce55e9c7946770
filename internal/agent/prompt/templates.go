package prompt

// Brand tokens every reply must carry
const (
	BrandHandle = "@BEARXRPL"
	BrandTicker = "$BEAR"
)

// RulesPrompt is the invariant rule block sent after the preset directive.
// The last sentence overrides any preset tone for serious posts.
const RulesPrompt = "Write exactly ONE reply string. No hashtags or links. " +
	"Include " + BrandHandle + " and " + BrandTicker + " naturally (not spammy). Keep it human. " +
	"If the original post is serious (loss, tragedy, health, conflict or a security incident), " +
	"switch to a respectful, supportive tone regardless of the preset."

// User content block parts
const (
	originalPostLabel = "Original post:\n"
	permalinkLabel    = "\nPermalink: "
	presetLabel       = "\nPreset: "
	taskInstruction   = "\nTask: ONE reply only. Text only."
)

// UsageHint is returned by GET requests
const UsageHint = `POST {"postText":"hello","preset":"gm"} to get a reply`

// DemoReply is returned alongside quota errors so the caller still has something to post
const DemoReply = "gm gm, keep building. " + BrandHandle + " " + BrandTicker
