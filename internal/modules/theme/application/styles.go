package application

import "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"

// The small, common themes ship as in-memory constants and are available
// synchronously. Decorative themes live in the assets package and are loaded
// on first request (see resolver.go).

const minimalCSS = `/* minimal theme */
body {
  background: #fafafa;
  color: #1a1a1a;
  font-family: 'Inter', 'Segoe UI', sans-serif;
}
.page { max-width: 640px; }
.display-name { color: #1a1a1a; }
.bio { color: #555555; }
.avatar { border: 2px solid #e5e5e5; }
.avatar-placeholder {
  background: #efefef;
  color: #999999;
  border: 2px solid #e5e5e5;
}
.social-link { color: #444444; }
.social-link:hover { color: #000000; }
.link-card {
  background: #ffffff;
  border: 1px solid #e5e5e5;
  border-radius: 12px;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.06);
}
.link-card:hover {
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
  transform: translateY(-2px);
}
.link-title { color: #1a1a1a; }
.link-desc { color: #777777; }
.footer { color: #aaaaaa; }
`

const darkCSS = `/* dark theme */
body {
  background: #111418;
  color: #e6e9ee;
  font-family: 'Inter', 'Segoe UI', sans-serif;
}
.page { max-width: 640px; }
.display-name { color: #ffffff; }
.bio { color: #9aa4b2; }
.avatar { border: 2px solid #2a2f36; }
.avatar-placeholder {
  background: #1b1f25;
  color: #5c6672;
  border: 2px solid #2a2f36;
}
.social-link { color: #9aa4b2; }
.social-link:hover { color: #ffffff; }
.link-card {
  background: #1b1f25;
  border: 1px solid #2a2f36;
  border-radius: 12px;
}
.link-card:hover {
  border-color: #3d4450;
  transform: translateY(-2px);
}
.link-title { color: #e6e9ee; }
.link-desc { color: #9aa4b2; }
.footer { color: #4e5561; }
`

const gradientCSS = `/* gradient theme */
body {
  background: linear-gradient(160deg, #ff9a9e 0%, #fad0c4 55%, #fbc2eb 100%);
  background-attachment: fixed;
  color: #2d2235;
  font-family: 'Poppins', 'Segoe UI', sans-serif;
}
.page { max-width: 640px; }
.display-name { color: #2d2235; }
.bio { color: #5c4a66; }
.avatar { border: 3px solid #ffffff; }
.avatar-placeholder {
  background: rgba(255, 255, 255, 0.6);
  color: #b08aa8;
  border: 3px solid #ffffff;
}
.social-link { color: #5c4a66; }
.social-link:hover { color: #2d2235; }
.link-card {
  background: rgba(255, 255, 255, 0.85);
  border: none;
  border-radius: 20px;
  box-shadow: 0 4px 14px rgba(45, 34, 53, 0.12);
}
.link-card:hover { transform: translateY(-2px); }
.link-title { color: #2d2235; }
.link-desc { color: #8a7694; }
.footer { color: rgba(45, 34, 53, 0.45); }
`

var eagerThemes = map[string]domain.Bundle{
	"minimal": {
		ID:   "minimal",
		Name: "Minimal",
		Styles: domain.Styles{
			Background:     "#fafafa",
			FontFamily:     "'Inter', 'Segoe UI', sans-serif",
			PrimaryColor:   "#1a1a1a",
			SecondaryColor: "#555555",
			BorderRadius:   "12px",
		},
		CSS: minimalCSS,
	},
	"dark": {
		ID:   "dark",
		Name: "Dark",
		Styles: domain.Styles{
			Background:     "#111418",
			FontFamily:     "'Inter', 'Segoe UI', sans-serif",
			PrimaryColor:   "#ffffff",
			SecondaryColor: "#9aa4b2",
			BorderRadius:   "12px",
		},
		CSS: darkCSS,
	},
	"gradient": {
		ID:   "gradient",
		Name: "Gradient",
		Styles: domain.Styles{
			Background:     "linear-gradient(160deg, #ff9a9e 0%, #fad0c4 55%, #fbc2eb 100%)",
			FontFamily:     "'Poppins', 'Segoe UI', sans-serif",
			PrimaryColor:   "#2d2235",
			SecondaryColor: "#5c4a66",
			BorderRadius:   "20px",
		},
		CSS: gradientCSS,
	},
}

var lazyStyles = map[string]domain.Styles{
	"neon": {
		Background:     "#05010d",
		FontFamily:     "'Orbitron', 'Segoe UI', sans-serif",
		PrimaryColor:   "#00f0ff",
		SecondaryColor: "#ff2ec4",
		BorderRadius:   "4px",
	},
	"retro": {
		Background:     "#f4e8d0",
		FontFamily:     "'Courier New', Courier, monospace",
		PrimaryColor:   "#d35400",
		SecondaryColor: "#6e5849",
		BorderRadius:   "0",
	},
	"glassmorph": {
		Background:      "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		FontFamily:      "'Poppins', 'Segoe UI', sans-serif",
		PrimaryColor:    "#ffffff",
		SecondaryColor:  "rgba(255, 255, 255, 0.8)",
		BorderRadius:    "16px",
		BackgroundImage: "",
	},
}

var lazyNames = map[string]string{
	"neon":       "Neon",
	"retro":      "Retro",
	"glassmorph": "Glassmorphism",
}
