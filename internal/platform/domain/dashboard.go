package domain

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Dashboard is the static landing content for a user type.
type Dashboard struct {
	UserType          UserType  `json:"user_type"`
	Title             string    `json:"title"`
	Icon              string    `json:"icon"`
	Description       string    `json:"description"`
	Features          []Feature `json:"features"`
	CertificateUpload bool      `json:"certificate_upload"`
}

var dashboards = map[UserType]Dashboard{
	UserTypeScholar: {
		UserType:    UserTypeScholar,
		Title:       "奨学生ダッシュボード",
		Icon:        "🎓",
		Description: "学習サポートと奨学金情報を確認できます",
		Features: []Feature{
			{Name: "学習進捗", Description: "現在の学習状況を確認"},
			{Name: "奨学金情報", Description: "受給可能な奨学金を探す"},
			{Name: "メンター", Description: "専門家からのサポートを受ける"},
			{Name: "課題提出", Description: "課題を提出し、フィードバックを受ける"},
		},
		CertificateUpload: true,
	},
	UserTypeIndividual: {
		UserType:    UserTypeIndividual,
		Title:       "個人支援者ダッシュボード",
		Icon:        "💫",
		Description: "支援している学生の情報を確認できます",
		Features: []Feature{
			{Name: "支援学生", Description: "支援している学生の一覧"},
			{Name: "支援履歴", Description: "過去の支援記録を確認"},
			{Name: "メッセージ", Description: "学生とのコミュニケーション"},
			{Name: "寄付管理", Description: "寄付の管理と履歴"},
		},
	},
	UserTypeCorporate: {
		UserType:    UserTypeCorporate,
		Title:       "企業支援者ダッシュボード",
		Icon:        "🏢",
		Description: "企業の支援プログラムを管理できます",
		Features: []Feature{
			{Name: "支援プログラム", Description: "実施中の支援プログラム"},
			{Name: "学生マッチング", Description: "企業にマッチした学生の紹介"},
			{Name: "CSR活動", Description: "社会貢献活動の管理"},
			{Name: "レポート", Description: "支援活動の成果レポート"},
		},
	},
}

// DashboardFor returns the dashboard of a selectable user type. The
// returned value is a copy.
func DashboardFor(ut UserType) (Dashboard, bool) {
	d, ok := dashboards[ut]
	if !ok {
		return Dashboard{}, false
	}
	d.Features = append([]Feature(nil), d.Features...)
	return d, true
}
