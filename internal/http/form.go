package http

import "net/http"

const formPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Amazon URL Shorter</title></head>
<body>
<h1>Amazon URL Shorter</h1>
<form action="/shorten" method="get">
<input type="text" name="q" placeholder="https://www.amazon.co.jp/***/dp/{id}/***" size="80">
<input type="submit" value="Shorten">
</form>
</body>
</html>
`

func writeForm(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(formPage))
}
