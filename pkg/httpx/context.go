package httpx

type ctxKey string

// CtxKeyAccountID carries the authenticated account's ID. The authentication
// middleware sets it; the rate limiter keys on it.
const CtxKeyAccountID ctxKey = "account_id"
