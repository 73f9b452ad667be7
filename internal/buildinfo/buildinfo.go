package buildinfo

const Graffiti = " _  __ _   _ _   _ \n| |/ /| \\ | | \\ | |\n| ' / |  \\| |  \\| |\n| . \\ | |\\  | |\\  |\n|_|\\_\\|_| \\_|_| \\_|\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "KNN"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
