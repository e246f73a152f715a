package notification

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

func createUser(t *testing.T, repos *repository.Repositories, username string, withProfile bool) uint {
	t.Helper()
	user := &model.User{
		Username:    username,
		RawPassword: "password123",
		Role:        model.RoleUser,
		Status:      model.UserStatusActive,
	}
	require.NoError(t, repos.User.Create(user))
	if withProfile {
		require.NoError(t, repos.Profile.Create(&model.Profile{UserID: user.ID, Nickname: username + "_nick"}))
	}
	return user.ID
}

func TestSendNotificationRendersMessage(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	sender := createUser(t, repos, "sender", true)
	receiver := createUser(t, repos, "receiver", true)

	require.NoError(t, svc.SendNotification(sender, receiver, model.NotifyFollow, sender))

	list, err := svc.GetNotificationList(receiver)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "sender_nick 关注了你", list[0].Message)
	require.Equal(t, sender, list[0].SenderID)
	require.False(t, list[0].IsRead)
}

func TestSendNotificationSenderWithoutProfile(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	sender := createUser(t, repos, "sender", false)
	receiver := createUser(t, repos, "receiver", true)

	err := svc.SendNotification(sender, receiver, model.NotifyFollow, sender)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	// 校验失败时不落库
	list, err := svc.GetNotificationList(receiver)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSendNotificationUnknownType(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	sender := createUser(t, repos, "sender", true)
	receiver := createUser(t, repos, "receiver", true)

	err := svc.SendNotification(sender, receiver, model.NotificationType("SHOUT"), 0)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestSendNotificationMissingUsers(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	sender := createUser(t, repos, "sender", true)

	err := svc.SendNotification(sender, 9999, model.NotifyFollow, sender)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	err = svc.SendNotification(9999, sender, model.NotifyFollow, 9999)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestNotifyWithoutDispatcherIsSynchronous(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	sender := createUser(t, repos, "sender", true)
	receiver := createUser(t, repos, "receiver", true)

	svc.Notify(sender, receiver, model.NotifyLikePost, 42)

	count, err := svc.GetUnreadCount(receiver)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestNotifyWithChannelDispatcher(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	done := make(chan struct{})
	dispatcher := NewChannelDispatcher(func(senderID, receiverID uint, notifyType model.NotificationType, targetID uint) error {
		defer close(done)
		return svc.SendNotification(senderID, receiverID, notifyType, targetID)
	})
	dispatcher.Start()
	defer dispatcher.Stop()
	svc.SetDispatcher(dispatcher)

	sender := createUser(t, repos, "sender", true)
	receiver := createUser(t, repos, "receiver", true)

	svc.Notify(sender, receiver, model.NotifyApply, 7)
	<-done

	list, err := svc.GetNotificationList(receiver)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "sender_nick 申请加入你的队伍", list[0].Message)
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewNotificationService(repos)

	sender := createUser(t, repos, "sender", true)
	receiver := createUser(t, repos, "receiver", true)
	other := createUser(t, repos, "other", true)

	require.NoError(t, svc.SendNotification(sender, receiver, model.NotifyFollow, sender))
	require.NoError(t, svc.SendNotification(sender, receiver, model.NotifyLikePost, 1))
	require.NoError(t, svc.SendNotification(sender, other, model.NotifyFollow, sender))

	list, err := svc.GetNotificationList(receiver)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, svc.MarkRead(list[0].ID, receiver))
	count, err := svc.GetUnreadCount(receiver)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// 别人的通知标不动自己的未读数
	require.NoError(t, svc.MarkRead(list[1].ID, other))
	count, err = svc.GetUnreadCount(receiver)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, svc.MarkAllRead(receiver))
	count, err = svc.GetUnreadCount(receiver)
	require.NoError(t, err)
	require.Zero(t, count)
}
