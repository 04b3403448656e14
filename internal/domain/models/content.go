// internal/domain/models/content.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentDocument is the single editable aggregate holding all site content.
// Exactly one instance exists, stored as a singleton document in the
// portfolio_content collection. Every public section and the admin dashboard
// read and write this one document whole; there are no field-level updates at
// the store layer.
//
// All list fields are declared as slices, never pointers: after resolution
// against DefaultContent() a document has no absent fields.
type ContentDocument struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Personal       Personal        `bson:"personal" json:"personal"`
	Stats          []Stat          `bson:"stats" json:"stats"`
	Skills         []Skill         `bson:"skills" json:"skills"`
	ExpertiseAreas []ExpertiseArea `bson:"expertise_areas" json:"expertiseAreas"`
	Experiences    []Experience    `bson:"experiences" json:"experiences"`
	Projects       []Project       `bson:"projects" json:"projects"`
	Social         []SocialLink    `bson:"social" json:"social"`
	Footer         Footer          `bson:"footer" json:"footer"`

	// Per-section heading overrides. Empty means "use the default heading".
	ExpertiseTitle     string `bson:"expertise_title,omitempty" json:"expertiseTitle,omitempty"`
	ExpertiseSubtitle  string `bson:"expertise_subtitle,omitempty" json:"expertiseSubtitle,omitempty"`
	ExperienceTitle    string `bson:"experience_title,omitempty" json:"experienceTitle,omitempty"`
	ExperienceSubtitle string `bson:"experience_subtitle,omitempty" json:"experienceSubtitle,omitempty"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Personal holds the singleton hero/about fields.
type Personal struct {
	Name     string `bson:"name" json:"name"`
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
	Email    string `bson:"email" json:"email"`
	Location string `bson:"location" json:"location"`
	WhatsApp string `bson:"whatsapp" json:"whatsapp"`
	Bio      string `bson:"bio" json:"bio"`
	Photo    string `bson:"photo,omitempty" json:"photo,omitempty"` // hosted asset URL
}

// Stat is one entry of the about-section counters.
// IDs are stable across reorders and round-trips; new entries take max+1.
type Stat struct {
	ID    int    `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
	Icon  string `bson:"icon" json:"icon"`
}

// Skill has no id; its identity is its position in the list.
type Skill struct {
	Name        string `bson:"name" json:"name"`
	Level       int    `bson:"level" json:"level"` // 0..100
	Icon        string `bson:"icon" json:"icon"`
	ShowLevel   bool   `bson:"show_level" json:"showLevel"`
	Description string `bson:"description" json:"description"`
}

// ExpertiseArea groups bullet items under a titled area. Items are bare
// strings identified by position within their parent.
type ExpertiseArea struct {
	ID    int      `bson:"id" json:"id"`
	Title string   `bson:"title" json:"title"`
	Items []string `bson:"items" json:"items"`
}

// Experience is one timeline entry.
type Experience struct {
	ID          int    `bson:"id" json:"id"`
	Role        string `bson:"role" json:"role"`
	Company     string `bson:"company" json:"company"`
	Period      string `bson:"period" json:"period"`
	Description string `bson:"description" json:"description"`
}

// Project is one portfolio piece. Order is the display sort key and is
// decoupled from storage position; rendering sorts by Order with storage
// position breaking ties.
type Project struct {
	ID          int      `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Category    string   `bson:"category" json:"category"`
	Description string   `bson:"description" json:"description"`
	Tags        []string `bson:"tags" json:"tags"`
	Image       string   `bson:"image" json:"image"`
	Images      []string `bson:"images" json:"images"`
	Order       int      `bson:"order" json:"order"`
}

// SocialLink is one footer/contact social entry.
type SocialLink struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Icon string `bson:"icon" json:"icon"`
}

// Footer holds the site footer strings.
type Footer struct {
	CopyrightText string `bson:"copyright_text" json:"copyrightText"`
	TaglineIcon   string `bson:"tagline_icon" json:"taglineIcon"`
	Tagline       string `bson:"tagline" json:"tagline"`
}

// IsZero reports whether the personal record carries no remote content.
// Name is the discriminating field: a personal record without a name was
// never set by an editor.
func (p Personal) IsZero() bool {
	return p.Name == ""
}

// IsZero reports whether the footer record carries no remote content.
func (f Footer) IsZero() bool {
	return f.CopyrightText == "" && f.TaglineIcon == "" && f.Tagline == ""
}

// Default section headings, used when the document carries no override.
const (
	DefaultExpertiseTitle     = "Áreas de Expertise"
	DefaultExpertiseSubtitle  = "Especialidades que definem meu trabalho"
	DefaultExperienceTitle    = "Experiência"
	DefaultExperienceSubtitle = "Minha trajetória profissional"
)

// DefaultContent returns the compiled-in default document. Each call builds a
// fresh value so callers can mutate their copy freely.
func DefaultContent() ContentDocument {
	return ContentDocument{
		Personal: Personal{
			Name:     "Felipe Mota",
			Title:    "Designer de iGaming",
			Subtitle: "Motion Graphics & Key Visuals para Cassinos",
			Email:    "contato@felipemota.com",
			Location: "Brasil",
			WhatsApp: "+55 11 99999-0000",
			Bio: "Sou um designer especializado no universo iGaming, criando experiências " +
				"visuais impactantes para slots, cassinos online e jogos de azar. Minha paixão " +
				"é transformar conceitos em visuais que capturam a essência de jogos como " +
				"Fortune Tiger, Fortune Ox e Fortune Rabbit.\n\n" +
				"Com anos de experiência em motion graphics e key visuals, desenvolvo projetos " +
				"que combinam criatividade, técnica e o brilho característico do mundo dos cassinos.",
		},
		Stats: []Stat{
			{ID: 1, Label: "Anos de Experiência", Value: "6+", Icon: "calendar"},
			{ID: 2, Label: "Projetos Entregues", Value: "120+", Icon: "briefcase"},
			{ID: 3, Label: "Jogos Lançados", Value: "30+", Icon: "dice"},
			{ID: 4, Label: "Clientes Atendidos", Value: "25+", Icon: "users"},
		},
		Skills: []Skill{
			{Name: "Motion Graphics", Level: 95, Icon: "🎬", ShowLevel: true, Description: "Animações para slots e campanhas"},
			{Name: "Key Visuals", Level: 90, Icon: "🎨", ShowLevel: true, Description: "Artes principais de jogos"},
			{Name: "After Effects", Level: 95, Icon: "✨", ShowLevel: true, Description: "Composição e efeitos"},
			{Name: "Photoshop", Level: 90, Icon: "🖼️", ShowLevel: true, Description: "Tratamento e pintura digital"},
			{Name: "Illustrator", Level: 85, Icon: "✏️", ShowLevel: true, Description: "Vetores e identidade visual"},
			{Name: "Figma", Level: 80, Icon: "📐", ShowLevel: false, Description: "Protótipos de interface"},
		},
		ExpertiseAreas: []ExpertiseArea{
			{ID: 1, Title: "Motion & Video", Items: []string{
				"Animação de símbolos e personagens",
				"Trailers de lançamento",
				"Efeitos de vitória e bônus",
			}},
			{ID: 2, Title: "Key Visual & Ilustração", Items: []string{
				"Personagens principais",
				"Cenários e composição",
				"Adaptações para campanhas",
			}},
			{ID: 3, Title: "Interface de Jogos", Items: []string{
				"Telas de slot e paytable",
				"Fluxos de navegação",
				"Kits de interface reutilizáveis",
			}},
		},
		Experiences: []Experience{
			{ID: 1, Role: "Senior Motion Designer", Company: "iGaming Studio", Period: "2022 - Presente",
				Description: "Criação de animações e key visuals para slots e jogos de cassino. Desenvolvimento de identidade visual para novos jogos."},
			{ID: 2, Role: "Motion Graphics Designer", Company: "Casino Digital", Period: "2020 - 2022",
				Description: "Produção de motion graphics para campanhas de marketing, trailers de jogos e materiais promocionais."},
			{ID: 3, Role: "Graphic Designer", Company: "Creative Agency", Period: "2018 - 2020",
				Description: "Design gráfico para diversos clientes, incluindo primeiros projetos no segmento de iGaming."},
		},
		Projects: []Project{
			{ID: 1, Title: "Fortune Tiger - Key Visual", Category: "Key Visual",
				Description: "Key visual completo para o jogo Fortune Tiger, incluindo personagem principal e elementos decorativos.",
				Tags:        []string{"Photoshop", "Illustrator", "iGaming"},
				Image:       "/projects/fortune-tiger.jpg", Images: []string{}, Order: 0},
			{ID: 2, Title: "Fortune Ox - Motion Graphics", Category: "Motion Graphics",
				Description: "Animação promocional para lançamento do jogo Fortune Ox com efeitos de partículas e transições dinâmicas.",
				Tags:        []string{"After Effects", "Motion", "3D"},
				Image:       "/projects/fortune-ox.jpg", Images: []string{}, Order: 1},
			{ID: 3, Title: "Fortune Rabbit - Campaign", Category: "Campaign",
				Description: "Campanha visual completa para o Fortune Rabbit, incluindo banners, key visuals e animações.",
				Tags:        []string{"Full Campaign", "iGaming", "Design"},
				Image:       "/projects/fortune-rabbit.jpg", Images: []string{}, Order: 2},
			{ID: 4, Title: "Slot Machine UI", Category: "UI/UX",
				Description: "Interface completa para máquina de slot, com animações de vitória e sistema de navegação.",
				Tags:        []string{"UI Design", "Figma", "Games"},
				Image:       "/projects/slot-ui.jpg", Images: []string{}, Order: 3},
			{ID: 5, Title: "Casino Promo Video", Category: "Video",
				Description: "Vídeo promocional para cassino online com motion graphics e composição visual.",
				Tags:        []string{"Video", "After Effects", "Marketing"},
				Image:       "/projects/casino-promo.jpg", Images: []string{}, Order: 4},
			{ID: 6, Title: "Lucky Dragon - Character", Category: "Character Design",
				Description: "Design de personagem para novo slot game, incluindo poses e expressões.",
				Tags:        []string{"Character", "Illustration", "iGaming"},
				Image:       "/projects/lucky-dragon.jpg", Images: []string{}, Order: 5},
		},
		Social: []SocialLink{
			{Name: "LinkedIn", URL: "https://linkedin.com/in/felipemota", Icon: "💼"},
			{Name: "Behance", URL: "https://behance.net/felipemota", Icon: "🎨"},
			{Name: "Instagram", URL: "https://instagram.com/felipemota", Icon: "📸"},
		},
		Footer: Footer{
			CopyrightText: "© Felipe Mota. Todos os direitos reservados.",
			TaglineIcon:   "✨",
			Tagline:       "Feito com brilho de cassino",
		},
	}
}
