package services

import (
	"html/template"
	"strings"
	"time"

	"print3d-backend/internal/dto"
)

// Письма собираются шаблонами над явной структурой с необязательными блоками,
// а не склейкой строк: наличие компании, файла и описания — это поля представления.

type companyView struct {
	Name string
	INN  string
}

type operatorEmailView struct {
	OrderNumber string
	Submission  dto.OrderSubmissionDTO
	Company     *companyView
	Phone       string
	Description string
	FileName    string
	Date        string
}

type customerEmailView struct {
	OrderNumber string
}

var operatorEmailTmpl = template.Must(template.New("operator").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2 style="color: #2563eb;">Новый заказ №{{.OrderNumber}}</h2>

	<h3>Параметры печати:</h3>
	<ul>
		<li><strong>Размеры:</strong> {{.Submission.Length}} x {{.Submission.Width}} x {{.Submission.Height}} мм</li>
		<li><strong>Материал:</strong> {{.Submission.Plastic}}</li>
		<li><strong>Цвет:</strong> {{.Submission.Color}}</li>
		<li><strong>Заполнение:</strong> {{.Submission.Infill}}%</li>
		<li><strong>Количество:</strong> {{.Submission.Quantity}} шт</li>
	</ul>

	<h3>Тип заказчика:</h3>
	<p><strong>{{.Submission.CustomerType}}</strong></p>
	{{if .Company}}<p><strong>Компания:</strong> {{.Company.Name}}</p>
	<p><strong>ИНН:</strong> {{.Company.INN}}</p>
	{{end}}
	<h3>Контакты:</h3>
	<ul>
		<li><strong>Email:</strong> {{.Submission.Email}}</li>
		<li><strong>Телефон:</strong> {{.Phone}}</li>
	</ul>

	<h3>Описание:</h3>
	<p>{{.Description}}</p>

	{{if .FileName}}<p><strong>Приложенный файл:</strong> {{.FileName}}</p>
	{{else}}<p>Файл модели не приложен</p>
	{{end}}
	<hr style="margin: 20px 0;">
	<p style="color: #666; font-size: 12px;">Дата заказа: {{.Date}}</p>
</body>
</html>
`))

var customerEmailTmpl = template.Must(template.New("customer").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2 style="color: #2563eb;">Спасибо за заказ!</h2>
	<p>Ваша заявка принята, её номер — <strong>{{.OrderNumber}}</strong>.</p>
	<p>Мы свяжемся с вами в течение 24 часов.</p>
	<hr style="margin: 20px 0;">
	<p style="color: #666; font-size: 12px;">3DPrintCustoms — 3D печать на заказ</p>
</body>
</html>
`))

func renderOperatorEmail(number string, submission dto.OrderSubmissionDTO) string {
	view := operatorEmailView{
		OrderNumber: number,
		Submission:  submission,
		Phone:       valueOrDefault(submission.Phone, "Не указан"),
		Description: valueOrDefault(submission.Description, "Не указано"),
		FileName:    submission.FileName,
		Date:        time.Now().Format("02.01.2006 15:04"),
	}
	if submission.IsLegal() {
		view.Company = &companyView{Name: submission.CompanyName, INN: submission.INN}
	}

	var b strings.Builder
	if err := operatorEmailTmpl.Execute(&b, view); err != nil {
		// Шаблон статический, сюда попадать некуда.
		panic(err)
	}
	return b.String()
}

func renderCustomerEmail(number string) string {
	var b strings.Builder
	if err := customerEmailTmpl.Execute(&b, customerEmailView{OrderNumber: number}); err != nil {
		panic(err)
	}
	return b.String()
}

func valueOrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
