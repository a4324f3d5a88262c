package rabbitmq

const (
	FOLLOWS_QUEUE  = "notifications.follows"
	NEW_POST_QUEUE = "notifications.new_post"
)
