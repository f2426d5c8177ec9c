package application

import "html/template"

// pageTemplate renders both export variants. Multi-file exports link out to
// styles.css/script.js; the inline variant carries one <style> block and the
// script body so the document pastes as a single self-contained unit.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:type" content="website">
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&family=Poppins:wght@400;600&display=swap">
{{- if .Inline}}
<style>
{{.InlineCSS}}
</style>
{{- else}}
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
<link rel="stylesheet" href="styles.css">
{{- end}}
</head>
<body>
<main class="page">
<section class="profile">
{{- if .ImageSrc}}
<img class="avatar" src="{{.ImageSrc}}" alt="{{.DisplayName}}">
{{- else}}
<div class="avatar avatar-placeholder" aria-hidden="true"><i class="fa-solid fa-user"></i></div>
{{- end}}
<h1 class="display-name">{{.DisplayName}}</h1>
<p class="bio">{{.Bio}}</p>
</section>
{{- if .Socials}}
<section class="socials">
{{- range .Socials}}
<a class="social-link" href="{{.URL}}" target="_blank" rel="noopener noreferrer" aria-label="{{.Label}}"><i class="fa-brands {{.Icon}}"></i><span class="social-label">{{.Label}}</span></a>
{{- end}}
</section>
{{- end}}
{{- if .Links}}
<section class="links">
{{- range .Links}}
<a class="link-card" href="{{.URL}}" target="_blank" rel="noopener noreferrer">
<span class="link-title">{{.Title}}</span>
{{- if .Description}}
<span class="link-desc">{{.Description}}</span>
{{- end}}
</a>
{{- end}}
</section>
{{- end}}
<footer class="footer">
<p>Made with LinkBio</p>
</footer>
</main>
{{- if .Inline}}
<script>
{{.InlineJS}}
</script>
{{- else}}
<script src="script.js"></script>
{{- end}}
</body>
</html>
`))

type socialView struct {
	URL   string
	Label string
	Icon  string
}

type linkView struct {
	Title       string
	URL         string
	Description string
}

type pageData struct {
	Title       string
	Description string
	DisplayName string
	Bio         string
	ImageSrc    template.URL
	Socials     []socialView
	Links       []linkView
	Inline      bool
	InlineCSS   template.CSS
	InlineJS    template.JS
}

// baseCSS is the fixed, theme-independent part of every export: layout,
// mobile breakpoint, dark-mode media query. Theme CSS is prepended to it.
const baseCSS = `/* layout */
* { margin: 0; padding: 0; box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  min-height: 100vh;
  display: flex;
  justify-content: center;
  line-height: 1.5;
  -webkit-font-smoothing: antialiased;
}
.page {
  width: 100%;
  padding: 48px 20px 32px;
  display: flex;
  flex-direction: column;
  gap: 28px;
}
.profile { text-align: center; }
.avatar {
  width: 112px;
  height: 112px;
  border-radius: 50%;
  object-fit: cover;
  margin-bottom: 16px;
}
.avatar-placeholder {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  font-size: 44px;
}
.display-name { font-size: 1.6rem; margin-bottom: 6px; }
.bio { font-size: 1rem; max-width: 480px; margin: 0 auto; }
.socials {
  display: flex;
  justify-content: center;
  flex-wrap: wrap;
  gap: 20px;
}
.social-link {
  display: inline-flex;
  align-items: center;
  gap: 8px;
  text-decoration: none;
  font-size: 1.3rem;
  transition: color 0.2s ease;
}
.social-label { font-size: 0.85rem; }
.links {
  display: flex;
  flex-direction: column;
  gap: 14px;
}
.link-card {
  display: flex;
  flex-direction: column;
  gap: 4px;
  padding: 16px 20px;
  text-decoration: none;
  transition: transform 0.2s ease, box-shadow 0.2s ease;
}
.link-title { font-size: 1.05rem; font-weight: 600; }
.link-desc { font-size: 0.88rem; }
.footer { text-align: center; font-size: 0.8rem; margin-top: 12px; }
body.loaded .page { animation: fade-in 0.4s ease; }
@keyframes fade-in {
  from { opacity: 0; transform: translateY(8px); }
  to { opacity: 1; transform: none; }
}

/* mobile */
@media (max-width: 480px) {
  .page { padding: 32px 16px 24px; }
  .avatar, .avatar-placeholder { width: 96px; height: 96px; }
  .display-name { font-size: 1.4rem; }
  .social-label { display: none; }
}

/* dark mode hint for themes that follow the system */
@media (prefers-color-scheme: dark) {
  :root { color-scheme: dark; }
}
`

// pageJS is the fixed interaction script: smooth scrolling for in-page
// anchors, a no-op click tracking hook, and a load-complete marker class.
const pageJS = `(function () {
  'use strict';

  document.addEventListener('DOMContentLoaded', function () {
    document.body.classList.add('loaded');

    document.querySelectorAll('a[href^="#"]').forEach(function (anchor) {
      anchor.addEventListener('click', function (e) {
        var target = document.querySelector(anchor.getAttribute('href'));
        if (target) {
          e.preventDefault();
          target.scrollIntoView({ behavior: 'smooth' });
        }
      });
    });

    // Click tracking hook. Replace with your analytics call if needed.
    function trackClick(url) { void url; }

    document.querySelectorAll('.link-card, .social-link').forEach(function (link) {
      link.addEventListener('click', function () {
        trackClick(link.href);
      });
    });
  });
})();
`
