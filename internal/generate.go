package internal

// Ent client is generated into internal/repo; run `go generate ./...` after
// changing anything under internal/schema.

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo ./schema
