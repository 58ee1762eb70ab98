// Package domain holds the core value types of the analysis pipeline and the
// interfaces of its external collaborators (price data, forum posts, sentiment
// scoring). All types are request-scoped values; nothing here is persisted or
// shared across requests.
package domain
