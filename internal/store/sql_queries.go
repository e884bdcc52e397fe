package store

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, bio, avatar, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, bio, avatar, created_at, updated_at
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT user_id, email, name, password_hash, bio, avatar, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createBlog = `INSERT INTO blogs (title, content)
    VALUES ($1, $2)
    RETURNING blog_id, title, content, created_at, updated_at;`

	getBlog = `SELECT blog_id, title, content, created_at, updated_at
    FROM blogs
    WHERE blog_id = $1;`

	getAllBlogs = `SELECT blog_id, title, content, created_at, updated_at
    FROM blogs
    ORDER BY blog_id;`

	deleteBlog = `DELETE FROM blogs
    WHERE blog_id = $1;`

	createComment = `INSERT INTO comments (blog_id, user_id, text)
    VALUES ($1, $2, $3)
    RETURNING comment_id, blog_id, user_id, text, created_at;`

	// Thread order is insertion order: comment_id ascending. Author display
	// fields are resolved with an explicit join against users.
	getCommentsForBlog = `SELECT c.comment_id, c.blog_id, c.user_id, u.name, u.avatar, c.text, c.created_at
    FROM comments c
    JOIN users u ON u.user_id = c.user_id
    WHERE c.blog_id = $1
    ORDER BY c.comment_id;`
)
