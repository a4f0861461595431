// Package content loads the site entries that social cards are rendered
// from.
//
// A content directory holds one profile per language and any number of
// posts:
//
//	content/
//	  profile/en.yaml
//	  profile/fr.md
//	  posts/en/hello-world.md
//	  posts/fr/notes/bonjour.md
//
// Profiles are plain YAML or Markdown with YAML front matter. Posts are
// Markdown with front matter; the slug is the path below the language
// directory without the .md extension. Drafts are skipped at load time.
package content
