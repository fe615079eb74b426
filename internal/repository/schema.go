package repository

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id        SERIAL PRIMARY KEY,
		text      TEXT NOT NULL CHECK (char_length(text) BETWEEN 1 AND 288),
		completed BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS labels (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (char_length(name) BETWEEN 1 AND 255)
	)`,
	`CREATE TABLE IF NOT EXISTS todo_labels (
		todo_id  INTEGER NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
		label_id INTEGER NOT NULL REFERENCES labels(id) ON DELETE CASCADE,
		PRIMARY KEY (todo_id, label_id)
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id        INT AUTO_INCREMENT PRIMARY KEY,
		text      VARCHAR(288) NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		CHECK (CHAR_LENGTH(text) >= 1)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS labels (
		id   INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		CHECK (CHAR_LENGTH(name) >= 1)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS todo_labels (
		todo_id  INT NOT NULL,
		label_id INT NOT NULL,
		PRIMARY KEY (todo_id, label_id),
		FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE,
		FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		text      TEXT NOT NULL CHECK (length(text) BETWEEN 1 AND 288),
		completed BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS labels (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE CHECK (length(name) BETWEEN 1 AND 255)
	)`,
	`CREATE TABLE IF NOT EXISTS todo_labels (
		todo_id  INTEGER NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
		label_id INTEGER NOT NULL REFERENCES labels(id) ON DELETE CASCADE,
		PRIMARY KEY (todo_id, label_id)
	)`,
}
