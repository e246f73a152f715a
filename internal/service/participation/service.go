// Package participation 实现组队申请的业务逻辑
// 名额校验和状态流转在事务内完成，保证并发申请不会超员
package participation

import (
	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

// Notifier 通知投递接口，由通知 Service 实现
// 投递是尽力而为的，不影响申请本身的结果
type Notifier interface {
	Notify(senderID, receiverID uint, notifyType model.NotificationType, targetID uint)
}

// participationService 组队申请业务逻辑实现
type participationService struct {
	repos    *repository.Repositories
	notifier Notifier
}

// NewParticipationService 构造函数
// notifier 传 nil 时不投递通知
func NewParticipationService(repos *repository.Repositories, notifier Notifier) *participationService {
	return &participationService{repos: repos, notifier: notifier}
}

func (s *participationService) notify(senderID, receiverID uint, notifyType model.NotificationType, targetID uint) {
	if s.notifier != nil {
		s.notifier.Notify(senderID, receiverID, notifyType, targetID)
	}
}

// countOccupied 统计占用名额的申请数（待处理 + 已通过）
func countOccupied(repos *repository.Repositories, postID uint) (int64, error) {
	return repos.Participation.CountByPostAndStatuses(postID,
		[]string{model.ParticipationPending, model.ParticipationAccepted})
}

// CreateParticipation 申请加入组队
// 校验顺序：用户/帖子存在 -> 帖子类型 -> 不能申请自己的帖子 ->
// 招募状态 OPEN -> 无重复申请 -> 名额未满（事务内二次校验）
func (s *participationService) CreateParticipation(userID, postID uint) (uint, error) {
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return 0, err
	}
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return 0, err
	}
	if post.Type != model.PostTypeTeam {
		return 0, errorx.New(errorx.CodeInvalidParam, "只有组队帖可以申请加入")
	}
	if post.UserID == userID {
		return 0, errorx.New(errorx.CodeInvalidState, "不能申请自己发布的组队帖")
	}

	teamInfo, err := s.repos.PostDetail.GetTeamInfo(postID)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return 0, errorx.New(errorx.CodeInvalidState, "该帖子没有招募信息")
		}
		return 0, err
	}
	if teamInfo.Status != model.TeamStatusOpen {
		return 0, errorx.New(errorx.CodeInvalidState, "招募已关闭")
	}

	if _, err := s.repos.Participation.FindByUserAndPost(userID, postID); err == nil {
		return 0, errorx.New(errorx.CodeAlreadyExists, "已经申请过该组队帖")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return 0, err
	}

	occupied, err := countOccupied(s.repos, postID)
	if err != nil {
		return 0, err
	}
	if occupied >= int64(teamInfo.Capacity) {
		return 0, errorx.New(errorx.CodeInvalidState, "名额已满")
	}

	p := &model.Participation{
		UserID: userID,
		PostID: postID,
		Status: model.ParticipationPending,
	}
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		// 事务内重新统计，避免并发申请超员
		occupied, err := countOccupied(txRepos, postID)
		if err != nil {
			return err
		}
		if occupied >= int64(teamInfo.Capacity) {
			return errorx.New(errorx.CodeInvalidState, "名额已满")
		}
		return txRepos.Participation.Create(p)
	})
	if err != nil {
		return 0, err
	}

	s.notify(userID, post.UserID, model.NotifyApply, postID)
	return p.ID, nil
}

// UpdateParticipation 处理组队申请，仅帖子作者可操作
// 只允许 PENDING -> ACCEPTED/REJECTED 的单向流转；
// 通过后名额刚好用满时，同一事务内关闭招募
func (s *participationService) UpdateParticipation(id, actorID uint, status string) error {
	if status != model.ParticipationAccepted && status != model.ParticipationRejected {
		return errorx.Newf(errorx.CodeInvalidParam, "非法申请状态 %s", status)
	}

	p, err := s.repos.Participation.FindByID(id)
	if err != nil {
		return err
	}
	post, err := s.repos.Post.FindByID(p.PostID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return errorx.New(errorx.CodeForbidden, "只有帖子作者可以处理申请")
	}
	if p.Status != model.ParticipationPending {
		return errorx.New(errorx.CodeInvalidState, "申请已处理")
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Participation.UpdateStatus(id, status); err != nil {
			return err
		}
		if status != model.ParticipationAccepted {
			return nil
		}
		accepted, err := txRepos.Participation.CountByPostAndStatuses(p.PostID,
			[]string{model.ParticipationAccepted})
		if err != nil {
			return err
		}
		teamInfo, err := txRepos.PostDetail.GetTeamInfo(p.PostID)
		if err != nil {
			return err
		}
		if accepted >= int64(teamInfo.Capacity) {
			return txRepos.PostDetail.UpdateTeamStatus(p.PostID, model.TeamStatusClosed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	notifyType := model.NotifyAccepted
	if status == model.ParticipationRejected {
		notifyType = model.NotifyRejected
	}
	s.notify(actorID, p.UserID, notifyType, p.PostID)
	return nil
}

// DeleteParticipation 撤回申请，仅申请人本人可操作
func (s *participationService) DeleteParticipation(id, userID uint) error {
	p, err := s.repos.Participation.FindByID(id)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return errorx.New(errorx.CodeForbidden, "只能撤回自己的申请")
	}
	return s.repos.Participation.Delete(id)
}

// GetParticipationsByPost 查询帖子收到的全部申请，仅帖子作者可查看
func (s *participationService) GetParticipationsByPost(postID, actorID uint) ([]respond.ParticipationRespond, error) {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, errorx.New(errorx.CodeForbidden, "只有帖子作者可以查看申请列表")
	}
	list, err := s.repos.Participation.FindByPost(postID)
	if err != nil {
		return nil, err
	}
	return toResponds(list), nil
}

// GetParticipationsByUser 查询用户发出的全部申请
func (s *participationService) GetParticipationsByUser(userID uint) ([]respond.ParticipationRespond, error) {
	list, err := s.repos.Participation.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return toResponds(list), nil
}

// CountAccepted 统计帖子已通过的申请数
func (s *participationService) CountAccepted(postID uint) (int64, error) {
	return s.repos.Participation.CountByPostAndStatuses(postID,
		[]string{model.ParticipationAccepted})
}

func toResponds(list []model.Participation) []respond.ParticipationRespond {
	result := make([]respond.ParticipationRespond, 0, len(list))
	for _, p := range list {
		result = append(result, respond.ParticipationRespond{
			ID:        p.ID,
			UserID:    p.UserID,
			PostID:    p.PostID,
			Status:    p.Status,
			CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return result
}
