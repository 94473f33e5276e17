// File: database/repository/content/defaults.go
package contentRepo

import (
	"log"

	"serviciohogar/models"

	"golang.org/x/crypto/bcrypt"
)

// DefaultServices returns the bundled service catalog served until an admin
// saves a custom one.
func DefaultServices() []models.ServiceItem {
	return []models.ServiceItem{
		{
			ID:          "1",
			Title:       "Fontanería Urgente",
			Description: "Solución inmediata a fugas de agua, desatascos de tuberías y reparación de grifería. Servicio 24h para evitar daños mayores en su hogar.",
			Icon:        "Droplets",
			ImageURL:    "https://images.unsplash.com/photo-1581244277943-fe4a9c777189?auto=format&fit=crop&w=800&q=80",
			Price:       55,
		},
		{
			ID:          "2",
			Title:       "Electricistas Autorizados",
			Description: "Restablecimiento de luz, reparación de cortocircuitos y emisión de boletines. Garantizamos instalaciones seguras y normativas.",
			Icon:        "Zap",
			ImageURL:    "https://images.unsplash.com/photo-1555963966-926031914a8a?auto=format&fit=crop&w=800&q=80",
			Price:       65,
		},
		{
			ID:          "3",
			Title:       "Cerrajería 24h",
			Description: "Apertura de puertas sin daños, cambio de bombines antibumping y seguridad para su hogar. Llegamos en 30 minutos.",
			Icon:        "Key",
			ImageURL:    "https://images.unsplash.com/photo-1582139329536-e7284fece509?auto=format&fit=crop&w=800&q=80",
			Price:       80,
		},
		{
			ID:          "4",
			Title:       "Climatización y Aire",
			Description: "Reparación, carga de gas y mantenimiento de aire acondicionado. Recupere el confort térmico de su hogar hoy mismo.",
			Icon:        "Thermometer",
			ImageURL:    "https://images.unsplash.com/photo-1631557026770-49271607730d?auto=format&fit=crop&w=800&q=80",
			Price:       70,
		},
		{
			ID:          "5",
			Title:       "Calderas y Calentadores",
			Description: "Expertos en calderas de gas y calentadores eléctricos. Reparación de averías y revisiones preventivas para asegurar agua caliente.",
			Icon:        "Flame",
			ImageURL:    "https://images.unsplash.com/photo-1518640467707-6811f4a6ab73?auto=format&fit=crop&w=800&q=80",
			Price:       60,
		},
	}
}

// DefaultFAQs returns the bundled FAQ list.
func DefaultFAQs() []models.FAQItem {
	return []models.FAQItem{
		{
			ID:       "faq_0",
			Question: "¿Cuánto tardan en llegar a mi domicilio?",
			Answer:   "Nuestro tiempo medio de llegada en Barcelona y área metropolitana es de 30 a 60 minutos para servicios urgentes.",
		},
		{
			ID:       "faq_1",
			Question: "¿Ofrecen garantía en las reparaciones?",
			Answer:   "Sí, todas nuestras reparaciones cuentan con una garantía mínima de 12 meses por escrito.",
		},
		{
			ID:       "faq_2",
			Question: "¿Trabajan en días festivos y fines de semana?",
			Answer:   "Absolutamente. Nuestro servicio de urgencias está operativo las 24 horas, los 365 días del año.",
		},
		{
			ID:       "faq_3",
			Question: "¿Cobran por el presupuesto?",
			Answer:   "Ofrecemos presupuestos gratuitos y sin compromiso en horario laboral estándar. Para urgencias, consulte nuestras tarifas.",
		},
	}
}

// DefaultSiteConfig returns the bundled site configuration.
func DefaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		Contact: models.ContactInfo{
			Phone:    "+34 602 698 605",
			WhatsApp: "+34 602 698 605",
			Email:    "ServicioHogar24@gmail.com",
			Address:  "Carrer de Mallorca, Barcelona",
		},
		Social: models.SocialLinks{
			Facebook:  "https://facebook.com",
			Instagram: "https://instagram.com",
			Twitter:   "https://twitter.com",
		},
		Pricing: models.PricingConfig{
			BaseFee:    35,
			UrgencyFee: 45,
			NightFee:   30,
		},
		Texts: models.SiteTexts{
			HeroTitle:     "ServicioHogar24.com – Urgencias 24h en Barcelona",
			HeroSubtitle:  "Fontanería, Electricidad, Cerrajería, Climatización, Calentadores",
			FooterText:    "Servicios profesionales de confianza en toda el área metropolitana.",
			Feature1Title: "Respuesta en 60 min",
			Feature1Desc:  "Tiempo medio de llegada en Barcelona",
			Feature2Title: "Servicio Profesional",
			Feature2Desc:  "Calidad y eficiencia asegurada en cada trabajo",
			Feature3Title: "Todos los Barrios",
			Feature3Desc:  "Eixample, Gràcia, Sants, Poblenou...",
		},
	}
}

// DefaultPosts returns the bundled starter articles.
func DefaultPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:       "1",
			Title:    "Mantenimiento preventivo de aire acondicionado",
			Slug:     "mantenimiento-aire-acondicionado",
			Excerpt:  "Descubre por qué es importante revisar tu equipo antes del verano para ahorrar en tu factura eléctrica.",
			Content:  "El mantenimiento del aire acondicionado es crucial para ahorrar energía y evitar averías costosas. <h2>Importancia de los filtros</h2> Los filtros sucios pueden reducir la eficiencia...",
			Date:     "2023-10-15",
			Category: "HVAC",
			ImageURL: "https://picsum.photos/800/400?random=10",
			ImageAlt: "Técnico reparando aire acondicionado",
			Language: "es",
			Status:   "published",
			SEO: models.PostSEO{
				MetaTitle:       "Mantenimiento de Aire Acondicionado en Barcelona | ServicioHogar24",
				MetaDescription: "Guía completa sobre el mantenimiento de aire acondicionado. Ahorra energía y evita averías con nuestros consejos de expertos.",
				FocusKeyword:    "mantenimiento aire acondicionado",
			},
		},
		{
			ID:       "2",
			Title:    "Emergency Water Leak: What to do?",
			Slug:     "emergency-water-leak-guide",
			Excerpt:  "Steps to minimize damage while waiting for the plumber.",
			Content:  "First step is to shut off the main water valve. Then try to locate the source of the leak...",
			Date:     "2023-11-02",
			Category: "Plumbing",
			ImageURL: "https://picsum.photos/800/400?random=11",
			ImageAlt: "Water leak under sink",
			Language: "en",
			Status:   "published",
			SEO: models.PostSEO{
				MetaTitle:       "Emergency Water Leak Repair Barcelona | 24h Plumbers",
				MetaDescription: "Urgent steps to take when you have a water leak. Call our 24h plumbers in Barcelona for immediate assistance.",
				FocusKeyword:    "water leak",
			},
		},
		{
			ID:       "3",
			Title:    "Mejorar la seguridad de tu hogar en Barcelona",
			Slug:     "seguridad-hogar-barcelona",
			Excerpt:  "Tipos de cerraduras antibumping y escudos protectores para evitar robos.",
			Content:  "Barcelona es una ciudad segura, pero nunca está de más actualizar la seguridad de tu puerta. <h2>Cerraduras Antibumping</h2> Este tipo de cerraduras...",
			Date:     "2023-11-20",
			Category: "Locksmith",
			ImageURL: "https://picsum.photos/800/400?random=12",
			ImageAlt: "Cerradura de alta seguridad",
			Language: "es",
			Status:   "published",
			SEO: models.PostSEO{
				MetaTitle:       "Mejorar Seguridad Hogar Barcelona | Cerrajeros 24h",
				MetaDescription: "Consejos de cerrajeros expertos para mejorar la seguridad de tu hogar en Barcelona. Cerraduras antibumping y más.",
				FocusKeyword:    "seguridad hogar",
			},
		},
	}
}

// DefaultCredentials returns the bootstrap admin account. The hash is
// derived at startup so the plaintext never ships in a stored artifact.
func DefaultCredentials() models.AdminCredentials {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash default admin password: %v", err)
	}
	return models.AdminCredentials{
		Email:        "admin@admin.com",
		PasswordHash: string(hash),
	}
}
