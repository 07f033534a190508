package model

// Comment is a single remark left on a post.  PostID and UserID point at
// entities owned by other services; nothing here checks that they exist.
//
// Fields:
//
//	ID     – unique identifier of the comment.
//	Text   – display text.
//	PostID – id of the post the comment belongs to.
//	UserID – id of the user who wrote it.
type Comment struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	PostID int    `json:"postId"`
	UserID int    `json:"userId"`
}
