package configs

// Storage configures where uploaded logos are written and the URL prefix
// they are served under.
type Storage struct {
	LogoDir  string `env:"LOGO_DIR" envDefault:"./data/logos"`
	BasePath string `env:"BASE_PATH" envDefault:"/logos"`
}
