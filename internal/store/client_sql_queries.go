// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (server_url, login, user_id, token, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (server_url) DO UPDATE SET
			login      = excluded.login,
			user_id    = excluded.user_id,
			token      = excluded.token,
			updated_at = excluded.updated_at;`

	getSession = `
		SELECT server_url, login, user_id, token, updated_at
		FROM sessions
		WHERE server_url = $1;`

	deleteSession = `
		DELETE FROM sessions
		WHERE server_url = $1;`
)
