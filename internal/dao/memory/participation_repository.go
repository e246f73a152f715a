package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type participationRepository struct {
	store *Store
}

func (r *participationRepository) FindByID(id uint) (*model.Participation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.participations[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询申请 id=%d", id)
	}
	return &p, nil
}

func (r *participationRepository) FindByUserAndPost(userID, postID uint) (*model.Participation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.participations {
		if p.UserID == userID && p.PostID == postID {
			found := p
			return &found, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "查询申请 user_id=%d post_id=%d", userID, postID)
}

func (r *participationRepository) FindByPost(postID uint) ([]model.Participation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []model.Participation
	for _, p := range r.store.participations {
		if p.PostID == postID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *participationRepository) FindByUser(userID uint) ([]model.Participation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []model.Participation
	for _, p := range r.store.participations {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *participationRepository) CountByPostAndStatuses(postID uint, statuses []string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, p := range r.store.participations {
		if p.PostID != postID {
			continue
		}
		for _, status := range statuses {
			if p.Status == status {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *participationRepository) Create(p *model.Participation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.participations {
		if existing.UserID == p.UserID && existing.PostID == p.PostID {
			return errorx.Newf(errorx.CodeDBError, "申请重复 user_id=%d post_id=%d", p.UserID, p.PostID)
		}
	}
	r.store.nextParticipationID++
	p.ID = r.store.nextParticipationID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.store.participations[p.ID] = *p
	return nil
}

func (r *participationRepository) UpdateStatus(id uint, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.participations[id]
	if !ok {
		return nil
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	r.store.participations[id] = p
	return nil
}

func (r *participationRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.participations, id)
	return nil
}
