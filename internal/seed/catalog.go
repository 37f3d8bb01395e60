package seed

import (
	"time"

	"FredStoreAPI/internal/model"
)

func strPtr(s string) *string { return &s }

// catalogProducts is the fixed product catalog written on first start.
func catalogProducts() []model.Product {
	released := model.NewDate(2024, time.January, 15)
	return []model.Product{
		{
			Name:         "Adobe Photoshop",
			Description:  strPtr("Professional image editing and manipulation software for photographers, graphic designers, and artists."),
			Category:     strPtr("Photo Editing"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe Illustrator",
			Description:  strPtr("Vector graphics editor and design program for creating logos, icons, drawings, typography, and illustrations."),
			Category:     strPtr("Vector Graphics"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe Premiere Pro",
			Description:  strPtr("Industry-leading video editing software for film, TV, and web content creation."),
			Category:     strPtr("Video Editing"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe After Effects",
			Description:  strPtr("Industry-standard motion graphics and visual effects software."),
			Category:     strPtr("Motion Graphics"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Lightroom Classic",
			Description:  strPtr("Digital photo workflow and editing software for professional photographers."),
			Category:     strPtr("Photo Management"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe InDesign",
			Description:  strPtr("Page design and layout software for print and digital media."),
			Category:     strPtr("Page Layout"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Audition",
			Description:  strPtr("Professional audio workstation for mixing, finishing, and precision editing."),
			Category:     strPtr("Audio Editing"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Acrobat Pro DC",
			Description:  strPtr("Complete PDF solution for working anywhere with documents."),
			Category:     strPtr("Document Management"),
			Price:        14.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS, Web"),
			Stock:        2000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe XD",
			Description:  strPtr("UI/UX design tool for creating web and mobile applications."),
			Category:     strPtr("UI/UX Design"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Dreamweaver",
			Description:  strPtr("Web development tool for designing, coding, and publishing websites."),
			Category:     strPtr("Web Development"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        500,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Animate",
			Description:  strPtr("Animation software for creating interactive vector animations."),
			Category:     strPtr("Animation"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        500,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Dimension",
			Description:  strPtr("3D design tool for creating photorealistic images."),
			Category:     strPtr("3D Design"),
			Price:        20.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        500,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Substance 3D Stager",
			Description:  strPtr("3D scene composition and rendering tool."),
			Category:     strPtr("3D Design"),
			Price:        49.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        300,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe Fresco",
			Description:  strPtr("Digital painting and drawing app with live brushes."),
			Category:     strPtr("Digital Art"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, iOS"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Express",
			Description:  strPtr("Quick and easy content creation tool for social media."),
			Category:     strPtr("Content Creation"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Web, iOS, Android"),
			Stock:        5000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe Bridge",
			Description:  strPtr("Digital asset management tool for creative professionals."),
			Category:     strPtr("Asset Management"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Windows, macOS"),
			Stock:        500,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Firefly",
			Description:  strPtr("AI-powered creative tool for generating and editing images."),
			Category:     strPtr("AI Creation"),
			Price:        14.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Web"),
			Stock:        2000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
		{
			Name:         "Adobe Fonts",
			Description:  strPtr("Digital font service with thousands of fonts for creative projects."),
			Category:     strPtr("Typography"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Web"),
			Stock:        10000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Portfolio",
			Description:  strPtr("Online portfolio creation tool for creative professionals."),
			Category:     strPtr("Web Design"),
			Price:        9.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Web"),
			Stock:        1000,
			ReleaseDate:  released,
			IsPromoted:   false,
		},
		{
			Name:         "Adobe Stock",
			Description:  strPtr("Royalty-free stock content service with millions of assets."),
			Category:     strPtr("Digital Assets"),
			Price:        29.99,
			Subscription: true,
			LicenseType:  strPtr("Single User"),
			Version:      strPtr("2024"),
			Platform:     strPtr("Web"),
			Stock:        1000000,
			ReleaseDate:  released,
			IsPromoted:   true,
		},
	}
}

// catalogUsers are the demo accounts written on first start.
func catalogUsers() []model.User {
	return []model.User{
		{Email: "sarah.smith@designstudio.com", Name: "Sarah Smith", Country: "United States"},
		{Email: "john.doe@creativepro.net", Name: "John Doe", Country: "Canada"},
		{Email: "maria.garcia@digitalarts.es", Name: "Maria Garcia", Country: "Spain"},
		{Email: "alex.wong@photomaster.com", Name: "Alex Wong", Country: "Singapore"},
		{Email: "emma.brown@webdev.co.uk", Name: "Emma Brown", Country: "United Kingdom"},
		{Email: "lucas.mueller@3dartist.de", Name: "Lucas Mueller", Country: "Germany"},
		{Email: "sophie.dubois@motion.fr", Name: "Sophie Dubois", Country: "France"},
		{Email: "marco.rossi@studiocreativo.it", Name: "Marco Rossi", Country: "Italy"},
		{Email: "yuki.tanaka@design.jp", Name: "Yuki Tanaka", Country: "Japan"},
		{Email: "olivia.wilson@artdirect.com.au", Name: "Olivia Wilson", Country: "Australia"},
		{Email: "carlos.silva@videomaker.br", Name: "Carlos Silva", Country: "Brazil"},
		{Email: "anna.kowalski@graphicpro.pl", Name: "Anna Kowalski", Country: "Poland"},
		{Email: "mohammed.ahmed@creativemena.ae", Name: "Mohammed Ahmed", Country: "United Arab Emirates"},
		{Email: "lisa.anderson@uxdesign.se", Name: "Lisa Anderson", Country: "Sweden"},
		{Email: "david.kim@digitalstudio.kr", Name: "David Kim", Country: "South Korea"},
	}
}
