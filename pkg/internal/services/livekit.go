package services

import (
	"context"
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var Lk *lksdk.RoomServiceClient

func SetupLiveKit() {
	host := "https://" + viper.GetString("calling.endpoint")

	Lk = lksdk.NewRoomServiceClient(
		host,
		viper.GetString("calling.api_key"),
		viper.GetString("calling.api_secret"),
	)
}

func CreateVoiceRoom(name string) error {
	if Lk == nil {
		return nil
	}
	_, err := Lk.CreateRoom(context.Background(), &livekit.CreateRoomRequest{
		Name:            name,
		EmptyTimeout:    viper.GetUint32("calling.empty_timeout_duration"),
		MaxParticipants: viper.GetUint32("calling.max_participants"),
	})
	if err != nil {
		return fmt.Errorf("remote livekit error: %v", err)
	}
	return nil
}

func DeleteVoiceRoom(name string) error {
	if Lk == nil {
		return nil
	}
	_, err := Lk.DeleteRoom(context.Background(), &livekit.DeleteRoomRequest{
		Room: name,
	})
	return err
}

func GetVoiceRoomParticipants(name string) ([]*livekit.ParticipantInfo, error) {
	if Lk == nil {
		return nil, nil
	}
	res, err := Lk.ListParticipants(context.Background(), &livekit.ListParticipantsRequest{
		Room: name,
	})
	if err != nil {
		return nil, err
	}
	return res.Participants, nil
}

// EncodeRoomToken issues a signed, time-boxed credential scoped to one room
// with publish and subscribe audio grants. The voice client takes it from
// there; the transport itself never touches this server.
func EncodeRoomToken(room, username string) (string, error) {
	apiKey := viper.GetString("calling.api_key")
	apiSecret := viper.GetString("calling.api_secret")
	if len(apiKey) == 0 || len(apiSecret) == 0 {
		return "", fmt.Errorf("voice provider credentials are not configured")
	}

	grant := &auth.VideoGrant{
		Room:         room,
		RoomJoin:     true,
		CanPublish:   lo.ToPtr(true),
		CanSubscribe: lo.ToPtr(true),
	}

	duration := time.Second * time.Duration(viper.GetInt("calling.token_duration"))
	tk := auth.NewAccessToken(apiKey, apiSecret)
	tk.AddGrant(grant).
		SetIdentity(username).
		SetValidFor(duration)

	return tk.ToJWT()
}
