package logcolors

// ANSI color codes for log prefixes
const (
	Reset  = "\033[0m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Red    = "\033[31m"
)

// Cache-related log prefixes
const (
	LogCacheInit   = Blue + "[Cache:Init]" + Reset
	LogCache       = Blue + "[Cache]" + Reset
	LogCacheClear  = Blue + "[Cache:Clear]" + Reset
	LogCacheLyrics = Green + "[Cache:Lyrics]" + Reset
)

// Server/Init log prefixes
const (
	LogServer = Green + "[Server]" + Reset
	LogConfig = Cyan + "[Config]" + Reset
	LogStats  = Blue + "[Stats]" + Reset
	LogHTTP   = Cyan + "[HTTP]" + Reset
	LogAdmin  = Purple + "[Admin]" + Reset
	LogSentry = Cyan + "[Sentry]" + Reset
)

// Pipeline log prefixes
const (
	LogSearch     = Blue + "[Search]" + Reset
	LogScrape     = Cyan + "[Scrape]" + Reset
	LogResolve    = Green + "[Resolve]" + Reset
	LogCommentary = Purple + "[Commentary]" + Reset
	LogModel      = Purple + "[Model]" + Reset
	LogWarning    = Red + "[Warning]" + Reset
)
