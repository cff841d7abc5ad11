package dto

import "github.com/google/uuid"

type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type LoginReq struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

type NoteReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Private *bool  `json:"private"`
}

type EditNoteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Private *bool  `json:"private"`
}

type EditFileReq struct {
	FileName string  `json:"file_name"`
	Private  *bool   `json:"private"`
	Details  *string `json:"details"`
}

type DeleteFileReq struct {
	Confirmation bool    `json:"confirmation"`
	Reason       *string `json:"reason"`
}

type SearchReq struct {
	SearchTerm string `json:"search_term"`
}

type BookmarkReq struct {
	Title   string     `json:"title" binding:"required"`
	Href    string     `json:"href" binding:"required"`
	GroupID *uuid.UUID `json:"groupId"`
	Private bool       `json:"private"`
	Details string     `json:"details"`
}

type EditBookmarkReq struct {
	Title   string     `json:"title"`
	Href    string     `json:"href"`
	GroupID *uuid.UUID `json:"groupId"`
	Private *bool      `json:"private"`
	Details *string    `json:"details"`
}

type GroupReq struct {
	Name    string `json:"name" binding:"required"`
	Private bool   `json:"private"`
}

type EditGroupReq struct {
	Name    string `json:"name"`
	Private *bool  `json:"private"`
}
