package constants

const (
    // Rate limits (requests per minute)
    GlobalAPILimit = 120 // Team and todo endpoints
)
