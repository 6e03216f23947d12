package embedding

const (
	LogPrefixEncode = "internal.embedding.EncodeBatch"

	DefaultCacheSize = 1024
)
