package store

const (
	createUser = `INSERT INTO users (email, master_password_hash, data_encryption_salt)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, master_password_hash, data_encryption_salt, created_at;`

	findUserByEmail = `SELECT user_id, email, master_password_hash, data_encryption_salt, created_at
    FROM users
    WHERE email = $1;`

	createSession = `INSERT INTO sessions (user_id, token, encryption_key, expires_at)
    VALUES ($1, $2, $3, $4)
    RETURNING session_id, user_id, token, encryption_key, expires_at, created_at;`

	findLiveSession = `SELECT session_id, user_id, token, encryption_key, expires_at, created_at
    FROM sessions
    WHERE token = $1 AND expires_at > $2;`

	deleteSession = `DELETE FROM sessions
    WHERE token = $1;`
)
