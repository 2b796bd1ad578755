package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	AuthSecret     string
	OrderRetention string
	AdminUsername  string
	AdminName      string
	AdminPassword  string
}
