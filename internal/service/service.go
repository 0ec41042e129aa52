package service

import (
	"asks_web/internal/client"
	"asks_web/internal/messaging"
	"asks_web/internal/repository"
)

type Services struct {
	Ask  *AskService
	Feed *FeedManager
}

func NewServices(
	repos *repository.Repositories,
	roomClient client.RoomClient,
	userClient client.UserClient,
	publisher messaging.Publisher,
	askCreatedTopic string,
) *Services {
	feed := NewFeedManager()

	return &Services{
		Ask:  NewAskService(repos.Ask, roomClient, userClient, publisher, feed, askCreatedTopic),
		Feed: feed,
	}
}
