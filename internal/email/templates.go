package email

const contactNotificationHTML = `<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>New message from the website</h2>
  <table cellpadding="4">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    {{if .Phone}}<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>{{end}}
    {{if .Service}}<tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>{{end}}
    {{if .PreferredDate}}<tr><td><strong>Preferred date</strong></td><td>{{.PreferredDate}}</td></tr>{{end}}
  </table>
  <h3>Message</h3>
  <p>{{.Message}}</p>
  <hr>
  <p style="color: #888; font-size: 12px;">Submitted {{.CreatedAt.Format "Jan 2, 2006 at 15:04 MST"}}</p>
</body>
</html>`
