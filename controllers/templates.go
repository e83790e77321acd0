package controllers

import "html/template"

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Your weekly menu</title>
</head>
<body>
<h1>Your weekly menu</h1>
{{if .Email}}<p>Signed in as {{.Email}}</p>{{end}}
{{if .Menu}}
<section id="macros">
<h2>Daily targets</h2>
<ul>
<li>Calories: {{.Menu.RecommendedMacros.Calories}} kcal</li>
<li>Proteins: {{.Menu.RecommendedMacros.Proteins}} g</li>
<li>Fats: {{.Menu.RecommendedMacros.Fats}} g</li>
<li>Carbs: {{.Menu.RecommendedMacros.Carbs}} g</li>
</ul>
{{if .Body.HasBMI}}<p>BMI {{printf "%.1f" .Body.BMI}} ({{.Body.Category}})</p>{{end}}
{{if .Body.HasGoalDiff}}<p>Distance to goal: {{printf "%.1f" .Body.ToGoalKg}} kg</p>{{end}}
</section>
<section id="plan">
{{range .Menu.WeekPlan}}
<h3>{{.Day}}</h3>
<ol>
{{range .Meals}}<li>{{.Title}} - {{.Calories}} kcal</li>
{{end}}</ol>
{{end}}
</section>
{{else}}
<p>{{.Message}}</p>
{{end}}
</body>
</html>
`

// Templates returns the HTML templates served by the router.
func Templates() *template.Template {
	return template.Must(template.New("dashboard.html").Parse(dashboardTemplate))
}
