package redisrepo

import "fmt"

const (
	PROFILE_KEY = "profile:%s" // <username>
)

func ProfileKey(username string) string {
	return fmt.Sprintf(PROFILE_KEY, username)
}
