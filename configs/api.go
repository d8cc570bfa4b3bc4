package configs

type API struct {
	Port int `env:"PORT" envDefault:"8080"`
}
