package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	DefaultIdentity   string `usage:"primary key field for collections created without one"`
	ApiKey            string `usage:"require this X-Api-Key header (empty disables auth)"`
	ApiSecret         string `usage:"require this X-Api-Secret header"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:        "127.0.0.1:8080",
		DefaultIdentity: "id",
		ShowBanner:      true,
	}
}
