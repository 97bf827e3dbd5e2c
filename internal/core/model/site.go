package model

type SiteContent struct {
	Company  Company   `yaml:"company"`
	Services []Service `yaml:"services"`
	Figures  []Figure  `yaml:"figures"`
	Footer   Footer    `yaml:"footer"`
}

type Company struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Pitch   string `yaml:"pitch"`
}

type Service struct {
	Slug  string `yaml:"slug"`
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	// Description is written in markdown
	Description string `yaml:"description"`
}

// Figure is a static company figure displayed in the stats marquee.
type Figure struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Footer struct {
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Links   []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}
