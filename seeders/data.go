package seeders

type clientSeed struct {
	Name         string
	LogoURL      string
	DisplayOrder int
}

type portfolioSeed struct {
	Title        string
	Description  string
	ImageURL     string
	DisplayOrder int
}

var clientsData = []clientSeed{
	{Name: "ТехноПром", LogoURL: "/images/clients/technoprom.png", DisplayOrder: 1},
	{Name: "Альфа Инжиниринг", LogoURL: "/images/clients/alpha-eng.png", DisplayOrder: 2},
	{Name: "МедТехника", LogoURL: "/images/clients/medtech.png", DisplayOrder: 3},
	{Name: "Ротор", LogoURL: "/images/clients/rotor.png", DisplayOrder: 4},
}

var portfolioData = []portfolioSeed{
	{
		Title:        "Корпус датчика давления",
		Description:  "Серия из 200 корпусов из ABS с постобработкой",
		ImageURL:     "/images/portfolio/sensor-case.jpg",
		DisplayOrder: 1,
	},
	{
		Title:        "Прототип редуктора",
		Description:  "Функциональный прототип из PETG за 3 дня",
		ImageURL:     "/images/portfolio/gearbox.jpg",
		DisplayOrder: 2,
	},
	{
		Title:        "Архитектурный макет",
		Description:  "Макет жилого комплекса в масштабе 1:200",
		ImageURL:     "/images/portfolio/arch-model.jpg",
		DisplayOrder: 3,
	},
}
