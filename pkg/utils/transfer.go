package utils

import (
	"strconv"
	"time"

	"VidTube.com/pkg/constants"
)

// Transfer converts a bound request value of unknown dynamic type into an
// int64 user/entity id. Returns -1 when the value cannot be interpreted.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}

func ConvertInt64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func ConvertTimestampToString(timestamp int64) string {
	return time.Unix(timestamp, 0).Format(constants.DataFormate)
}

func ConvertStringToTimestamp(date string) int64 {
	t, _ := time.ParseInLocation(constants.DataFormate, date, time.Local)
	return t.Unix()
}

// NormalizePage clamps page/size to sane bounds so that DAL offset
// arithmetic never goes negative and a single page stays bounded.
func NormalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum < 1 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return pageNum, pageSize
}

// IsValidID reports whether v is a well formed entity identifier.
// Snowflake ids are always positive.
func IsValidID(v int64) bool {
	return v > 0
}
