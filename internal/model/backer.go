package model

import (
	"fmt"
	"time"
)

// User 站点账号，认证本身由宿主框架负责
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username  string `json:"username" gorm:"size:30;uniqueIndex;not null"`
	FirstName string `json:"first_name" gorm:"size:30"`
	LastName  string `json:"last_name" gorm:"size:30"`
	Email     string `json:"email" gorm:"size:254"`
}

// Backer 出资人，可以关联账号，也可以只留联系信息
type Backer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 每个账号至多对应一个出资人
	UserID *uint `json:"user_id" gorm:"uniqueIndex"`
	User   *User `json:"-"`

	FirstName string `json:"first_name" gorm:"size:30"`
	LastName  string `json:"last_name" gorm:"size:30"`
	Email     string `json:"email" gorm:"size:254"`
}

// Identity 出资人身份信息。关联了账号时取账号字段，否则取本地字段。
type Identity interface {
	FirstName() string
	LastName() string
	Email() string
	FullName() string
}

// Identity 返回身份解析器，User需要预加载
func (b *Backer) Identity() Identity {
	if b.User != nil {
		return accountIdentity{user: b.User}
	}
	return localIdentity{backer: b}
}

// accountIdentity 账号身份
type accountIdentity struct {
	user *User
}

func (a accountIdentity) FirstName() string { return a.user.FirstName }
func (a accountIdentity) LastName() string  { return a.user.LastName }
func (a accountIdentity) Email() string     { return a.user.Email }
func (a accountIdentity) FullName() string {
	return fmt.Sprintf("%s %s", a.user.FirstName, a.user.LastName)
}

// localIdentity 本地联系信息身份
type localIdentity struct {
	backer *Backer
}

func (l localIdentity) FirstName() string { return l.backer.FirstName }
func (l localIdentity) LastName() string  { return l.backer.LastName }
func (l localIdentity) Email() string     { return l.backer.Email }
func (l localIdentity) FullName() string {
	return fmt.Sprintf("%s %s", l.backer.FirstName, l.backer.LastName)
}
