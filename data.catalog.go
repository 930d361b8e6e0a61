package main

import "github.com/shopspring/decimal"

// SampleBooks returns the static catalog dataset. The storefront has no
// persistence layer: this collection is the whole catalog, loaded once
// at boot and reset to these exact records on every process restart.
func SampleBooks() []Book {
	return []Book{
		{
			ID:          "1",
			Title:       "The Silent Echo",
			Author:      "Elizabeth Blackwood",
			Description: "In the quiet town of Millfield, strange echoes begin to haunt the residents, bringing back forgotten memories and unveiling dark secrets. When local librarian Maya discovers an ancient book that seems connected to the phenomenon, she embarks on a journey to uncover the truth before the echoes consume everyone she loves.\n\nBlackwood's masterful storytelling weaves together elements of mystery, supernatural suspense, and human connection in this unforgettable tale about the power of memory and the weight of unspoken words.",
			Price:       decimal.RequireFromString("18.99"),
			CoverImage:  "https://images.unsplash.com/photo-1544947950-fa07a98d237f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Mystery", "Supernatural", "Fiction"},
			Rating:      4.7,
			PublishDate: "2023-04-15",
			Pages:       348,
			ISBN:        "978-1234567890",
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Whispers of the Cosmos",
			Author:      "Dr. Adrian Nash",
			Description: "An exploration of humanity's place in the universe, examining cutting-edge astronomical discoveries and their philosophical implications. Dr. Nash combines scientific rigor with accessible prose to guide readers through complex cosmic concepts and their meaning for our existence.",
			Price:       decimal.RequireFromString("24.99"),
			CoverImage:  "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Science", "Philosophy", "Non-fiction"},
			Rating:      4.5,
			PublishDate: "2022-11-08",
			Pages:       412,
			ISBN:        "978-0987654321",
		},
		{
			ID:          "3",
			Title:       "The Art of Simplicity",
			Author:      "Marie Chen",
			Description: "A guide to minimalist living in a complex world. Chen shares practical wisdom for decluttering not just your space, but your mind and schedule, creating room for what truly matters.",
			Price:       decimal.RequireFromString("16.95"),
			CoverImage:  "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Self-Help", "Lifestyle", "Non-fiction"},
			Rating:      4.2,
			PublishDate: "2023-01-22",
			Pages:       256,
			ISBN:        "978-5678901234",
		},
		{
			ID:          "4",
			Title:       "Kingdoms of Sand and Stone",
			Author:      "Marcus Reid",
			Description: "In a desert empire where water is more precious than gold, a young ruler must navigate political intrigue, ancient magic, and her own heart to save her people from drought and destruction.",
			Price:       decimal.RequireFromString("22.99"),
			CoverImage:  "https://images.unsplash.com/photo-1531541518660-325ca576ead6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Fantasy", "Adventure", "Young Adult"},
			Rating:      4.8,
			PublishDate: "2022-06-30",
			Pages:       480,
			ISBN:        "978-2468013579",
			Featured:    true,
		},
		{
			ID:          "5",
			Title:       "Code & Culture",
			Author:      "Sophia Patel",
			Description: "An examination of how programming languages shape thought patterns and cultural development in the digital age. Patel combines technical knowledge with cultural analysis in this groundbreaking study.",
			Price:       decimal.RequireFromString("29.99"),
			CoverImage:  "https://images.unsplash.com/photo-1551029506-0807df4e2031?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Technology", "Cultural Studies", "Non-fiction"},
			Rating:      4.6,
			PublishDate: "2023-03-14",
			Pages:       375,
			ISBN:        "978-1357924680",
		},
		{
			ID:          "6",
			Title:       "Midnight in the Garden District",
			Author:      "James Holden",
			Description: "A noir detective story set in New Orleans. When a prominent family's heirloom goes missing, private investigator Lila Monroe is drawn into a web of old vendettas and buried secrets.",
			Price:       decimal.RequireFromString("19.95"),
			CoverImage:  "https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Mystery", "Thriller", "Fiction"},
			Rating:      4.3,
			PublishDate: "2022-09-20",
			Pages:       320,
			ISBN:        "978-9876543210",
		},
		{
			ID:          "7",
			Title:       "Beyond the Horizon",
			Author:      "Amara Washington",
			Description: "A collection of interconnected short stories following characters who face moments of profound change. From New York to Tokyo to Rio, these tales explore how people redefine themselves when everything they know is called into question.",
			Price:       decimal.RequireFromString("17.50"),
			CoverImage:  "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Literary Fiction", "Short Stories", "Contemporary"},
			Rating:      4.4,
			PublishDate: "2023-02-10",
			Pages:       284,
			ISBN:        "978-3692581470",
			Featured:    true,
		},
		{
			ID:          "8",
			Title:       "The Sustainable Kitchen",
			Author:      "Liam Torres",
			Description: "A cookbook and guide to environmentally conscious eating. Torres, an acclaimed chef and environmental advocate, provides 100+ delicious recipes alongside practical tips for reducing food waste and making eco-friendly choices.",
			Price:       decimal.RequireFromString("32.00"),
			CoverImage:  "https://images.unsplash.com/photo-1528164344705-47542687000d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Genre:       []string{"Cookbook", "Sustainability", "Non-fiction"},
			Rating:      4.9,
			PublishDate: "2023-05-02",
			Pages:       330,
			ISBN:        "978-4815162342",
		},
	}
}

// SampleReviews returns the static review dataset, each attached to one
// of the featured books.
func SampleReviews() []Review {
	return []Review{
		{
			ID:         "r1",
			BookID:     "1",
			UserID:     "u1",
			UserName:   "Emma Thompson",
			UserAvatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
			Rating:     5,
			Text:       "This book completely changed my perspective on life. The characters are so well developed and the story is captivating from start to finish.",
			Date:       "2023-11-15",
		},
		{
			ID:         "r2",
			BookID:     "4",
			UserID:     "u2",
			UserName:   "Michael Chen",
			UserAvatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
			Rating:     4,
			Text:       "Beautifully written with an engaging plot. I couldn't put it down and finished it in one sitting.",
			Date:       "2023-10-28",
		},
		{
			ID:       "r3",
			BookID:   "7",
			UserID:   "u3",
			UserName: "Sarah Johnson",
			Rating:   5,
			Text:     "The author has a unique writing style that pulls you in from the first page. Highly recommend!",
			Date:     "2023-09-17",
		},
	}
}
