package logging

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases so engine code never imports zap directly.

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Strings(key string, vals []string) zap.Field {
	return zap.Strings(key, vals)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

func Time(key string, val time.Time) zap.Field {
	return zap.Time(key, val)
}

func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}

// Stringer logs any fmt.Stringer lazily, used for num values.
func Stringer(key string, val interface{ String() string }) zap.Field {
	return zap.Stringer(key, val)
}

func VaultID(id string) zap.Field {
	return zap.String("vault-id", id)
}

func SeriesID(id string) zap.Field {
	return zap.String("series-id", id)
}

func AssetID(id string) zap.Field {
	return zap.String("asset-id", id)
}

func Party(id string) zap.Field {
	return zap.String("party", id)
}
