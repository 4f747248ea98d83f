package integration_test

const (
	dbName         = "cinema_tickets"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	TestAccountId = 123
)
