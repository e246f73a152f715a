package participation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"outspecs_server/internal/dao/memory"
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

func createUser(t *testing.T, repos *repository.Repositories, username string) uint {
	t.Helper()
	user := &model.User{
		Username:    username,
		RawPassword: "password123",
		Role:        model.RoleUser,
		Status:      model.UserStatusActive,
	}
	require.NoError(t, repos.User.Create(user))
	require.NoError(t, repos.Profile.Create(&model.Profile{UserID: user.ID, Nickname: username + "_nick"}))
	return user.ID
}

func createTeamPost(t *testing.T, repos *repository.Repositories, ownerID uint, capacity int) uint {
	t.Helper()
	post := &model.Post{
		UserID:  ownerID,
		Type:    model.PostTypeTeam,
		Title:   "一起做项目",
		Content: "招募队友",
	}
	require.NoError(t, repos.Post.Create(post))
	require.NoError(t, repos.PostDetail.SaveTeamInfo(&model.PostTeamInfo{
		PostID:   post.ID,
		Status:   model.TeamStatusOpen,
		Capacity: capacity,
	}))
	return post.ID
}

func TestCreateParticipation(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	postID := createTeamPost(t, repos, owner, 3)

	id, err := svc.CreateParticipation(applicant, postID)
	require.NoError(t, err)
	require.NotZero(t, id)

	p, err := repos.Participation.FindByID(id)
	require.NoError(t, err)
	require.Equal(t, model.ParticipationPending, p.Status)
}

func TestCreateParticipationSelfApply(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	postID := createTeamPost(t, repos, owner, 3)

	_, err := svc.CreateParticipation(owner, postID)
	require.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestCreateParticipationDuplicate(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	postID := createTeamPost(t, repos, owner, 3)

	_, err := svc.CreateParticipation(applicant, postID)
	require.NoError(t, err)

	_, err = svc.CreateParticipation(applicant, postID)
	require.Equal(t, errorx.CodeAlreadyExists, errorx.GetCode(err))
}

func TestCreateParticipationNonTeamPost(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	post := &model.Post{UserID: owner, Type: model.PostTypeFree, Title: "随便聊聊", Content: "内容"}
	require.NoError(t, repos.Post.Create(post))

	_, err := svc.CreateParticipation(applicant, post.ID)
	require.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

// 名额为 5 时第 6 个申请应被拒绝，占用名额按 PENDING+ACCEPTED 统计
func TestCreateParticipationCapacityFull(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	postID := createTeamPost(t, repos, owner, 5)

	for i := 0; i < 5; i++ {
		applicant := createUser(t, repos, fmt.Sprintf("applicant%d", i))
		_, err := svc.CreateParticipation(applicant, postID)
		require.NoError(t, err)
	}

	overflow := createUser(t, repos, "overflow")
	_, err := svc.CreateParticipation(overflow, postID)
	require.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

// 通过的申请数达到名额时，同一操作应关闭招募，后续申请被拒绝
func TestUpdateParticipationAcceptClosesTeam(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	postID := createTeamPost(t, repos, owner, 2)

	var ids []uint
	for i := 0; i < 2; i++ {
		applicant := createUser(t, repos, fmt.Sprintf("applicant%d", i))
		id, err := svc.CreateParticipation(applicant, postID)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	for _, id := range ids {
		require.NoError(t, svc.UpdateParticipation(id, owner, model.ParticipationAccepted))
	}

	teamInfo, err := repos.PostDetail.GetTeamInfo(postID)
	require.NoError(t, err)
	require.Equal(t, model.TeamStatusClosed, teamInfo.Status)

	late := createUser(t, repos, "late")
	_, err = svc.CreateParticipation(late, postID)
	require.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestUpdateParticipationOnlyOwner(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	stranger := createUser(t, repos, "stranger")
	postID := createTeamPost(t, repos, owner, 3)

	id, err := svc.CreateParticipation(applicant, postID)
	require.NoError(t, err)

	err = svc.UpdateParticipation(id, stranger, model.ParticipationAccepted)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestUpdateParticipationOnlyPending(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	postID := createTeamPost(t, repos, owner, 3)

	id, err := svc.CreateParticipation(applicant, postID)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateParticipation(id, owner, model.ParticipationRejected))

	err = svc.UpdateParticipation(id, owner, model.ParticipationAccepted)
	require.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestDeleteParticipationOnlyOwn(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	stranger := createUser(t, repos, "stranger")
	postID := createTeamPost(t, repos, owner, 3)

	id, err := svc.CreateParticipation(applicant, postID)
	require.NoError(t, err)

	err = svc.DeleteParticipation(id, stranger)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
	require.NoError(t, svc.DeleteParticipation(id, applicant))

	_, err = repos.Participation.FindByID(id)
	require.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestGetParticipationsByPostOnlyOwner(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewParticipationService(repos, nil)

	owner := createUser(t, repos, "owner")
	applicant := createUser(t, repos, "applicant")
	postID := createTeamPost(t, repos, owner, 3)

	_, err := svc.CreateParticipation(applicant, postID)
	require.NoError(t, err)

	_, err = svc.GetParticipationsByPost(postID, applicant)
	require.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	list, err := svc.GetParticipationsByPost(postID, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
