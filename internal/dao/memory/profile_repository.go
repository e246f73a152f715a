package memory

import (
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type profileRepository struct {
	store *Store
}

func (r *profileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.profiles[userID]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询用户资料 user_id=%d", userID)
	}
	return &profile, nil
}

func (r *profileRepository) FindByNickname(nickname string) (*model.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, profile := range r.store.profiles {
		if profile.Nickname == nickname {
			p := profile
			return &p, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "查询用户资料 nickname=%s", nickname)
}

func (r *profileRepository) Create(profile *model.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.profiles[profile.UserID]; ok {
		return errorx.Newf(errorx.CodeDBError, "用户资料已存在 user_id=%d", profile.UserID)
	}
	for _, existing := range r.store.profiles {
		if existing.Nickname == profile.Nickname {
			return errorx.Newf(errorx.CodeDBError, "昵称重复 nickname=%s", profile.Nickname)
		}
	}
	r.store.profiles[profile.UserID] = *profile
	return nil
}

func (r *profileRepository) Update(profile *model.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.profiles[profile.UserID]; !ok {
		return errorx.Newf(errorx.CodeNotFound, "更新用户资料 user_id=%d", profile.UserID)
	}
	r.store.profiles[profile.UserID] = *profile
	return nil
}

func (r *profileRepository) DeleteByUserID(userID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.profiles, userID)
	return nil
}
