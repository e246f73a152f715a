package chat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
	"outspecs_server/pkg/util/snowflake"
)

func init() {
	snowflake.Init(1)
}

func createUser(t *testing.T, repos *repository.Repositories, username string, role string) uint {
	t.Helper()
	user := &model.User{
		Username:    username,
		RawPassword: "password123",
		Role:        role,
		Status:      model.UserStatusActive,
	}
	require.NoError(t, repos.User.Create(user))
	require.NoError(t, repos.Profile.Create(&model.Profile{UserID: user.ID, Nickname: username + "_nick"}))
	return user.ID
}

func TestGetOrCreateRoomPairNormalized(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bob := createUser(t, repos, "bob", model.RoleUser)

	room1, err := svc.GetOrCreateRoom(alice, bob)
	require.NoError(t, err)
	require.Equal(t, bob, room1.PeerID)
	require.Equal(t, "bob_nick", room1.PeerNickname)

	// 反方向发起得到同一个会话
	room2, err := svc.GetOrCreateRoom(bob, alice)
	require.NoError(t, err)
	require.Equal(t, room1.ID, room2.ID)
	require.Equal(t, alice, room2.PeerID)
}

func TestGetOrCreateRoomInvalid(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)

	_, err := svc.GetOrCreateRoom(alice, alice)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.GetOrCreateRoom(alice, 9999)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestGetOrCreateRoomWithChatbot(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bot := createUser(t, repos, "helper_bot", model.RoleChatbot)

	room, err := svc.GetOrCreateRoom(alice, bot)
	require.NoError(t, err)
	require.True(t, room.IsChatbot)
}

func TestSendMessageAndList(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bob := createUser(t, repos, "bob", model.RoleUser)
	room, err := svc.GetOrCreateRoom(alice, bob)
	require.NoError(t, err)

	first, err := svc.SendMessage(room.ID, alice, "你好")
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.False(t, first.HasRead)

	second, err := svc.SendMessage(room.ID, bob, "你好呀")
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	messages, err := svc.GetMessageList(room.ID, alice)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, "你好", messages[0].Content)

	// 会话列表带上最后一条消息
	rooms, err := svc.GetRoomList(alice)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, "你好呀", rooms[0].LastMessage)
}

func TestSendMessageValidation(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bob := createUser(t, repos, "bob", model.RoleUser)
	eve := createUser(t, repos, "eve", model.RoleUser)
	room, err := svc.GetOrCreateRoom(alice, bob)
	require.NoError(t, err)

	_, err = svc.SendMessage(room.ID, alice, "  ")
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 非会话成员不能发消息
	_, err = svc.SendMessage(room.ID, eve, "偷听")
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
	_, err = svc.GetMessageList(room.ID, eve)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestMarkReadOnlyMarksPeerMessages(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bob := createUser(t, repos, "bob", model.RoleUser)
	room, err := svc.GetOrCreateRoom(alice, bob)
	require.NoError(t, err)

	_, err = svc.SendMessage(room.ID, alice, "第一条")
	require.NoError(t, err)
	_, err = svc.SendMessage(room.ID, bob, "第二条")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(room.ID, bob))

	messages, err := svc.GetMessageList(room.ID, bob)
	require.NoError(t, err)
	for _, message := range messages {
		if message.SenderID == alice {
			require.True(t, message.HasRead)
		} else {
			require.False(t, message.HasRead)
		}
	}
}

func TestDeleteRoomCascadesMessages(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bob := createUser(t, repos, "bob", model.RoleUser)
	eve := createUser(t, repos, "eve", model.RoleUser)
	room, err := svc.GetOrCreateRoom(alice, bob)
	require.NoError(t, err)
	_, err = svc.SendMessage(room.ID, alice, "要删的消息")
	require.NoError(t, err)

	err = svc.DeleteRoom(room.ID, eve)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	require.NoError(t, svc.DeleteRoom(room.ID, alice))
	rooms, err := svc.GetRoomList(alice)
	require.NoError(t, err)
	require.Empty(t, rooms)

	messages, err := repos.ChatMessage.ListByRoom(room.ID)
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestGetPeerID(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewChatService(repos)

	alice := createUser(t, repos, "alice", model.RoleUser)
	bob := createUser(t, repos, "bob", model.RoleUser)
	room, err := svc.GetOrCreateRoom(alice, bob)
	require.NoError(t, err)

	peer, err := svc.GetPeerID(room.ID, alice)
	require.NoError(t, err)
	require.Equal(t, bob, peer)
}
