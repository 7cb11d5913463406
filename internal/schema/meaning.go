package schema

import "strings"

var abbreviations = map[string]string{
	// Common Nouns
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"biz": "business", "pwd": "password", "passwd": "password", "pw": "password",
	"img": "image", "url": "url", "ip": "ip", "zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"usr": "user", "emp": "employee", "dept": "department", "grp": "group",
	"cat": "category", "loc": "location", "lat": "latitude", "lng": "longitude",
	"lon": "longitude", "st": "street", "bal": "balance", "avg": "average",
	"uid": "id", "pid": "id",

	// Verbs / Status
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yesno", "stat": "status", "sts": "status",
	"typ": "type", "val": "value", "seq": "sequence", "idx": "index",
	"is": "yesno", "use": "yesno", "flg": "flag",
}

// meaningRules are checked in order against the decoded column text; the first
// rule with a matching keyword names the meaning.
var meaningRules = []struct {
	meaning  string
	keywords []string
}{
	{"email", []string{"email", "mail", "이메일"}},
	{"phone", []string{"phone", "mobile", "전화", "휴대폰", "연락처"}},
	{"zipcode", []string{"zipcode", "postal", "우편"}},
	{"address", []string{"address", "주소"}},
	{"password", []string{"password", "비밀번호"}},
	{"date", []string{"date", "time", "registered", "created", "updated", "modified", "날짜", "일시"}},
	{"yesno", []string{"yesno", "flag", "active", "여부"}},
	{"price", []string{"price", "cost", "amount", "balance", "금액", "가격"}},
	{"count", []string{"count", "quantity", "수량"}},
	{"latitude", []string{"latitude"}},
	{"longitude", []string{"longitude"}},
	{"country", []string{"country", "국가"}},
	{"city", []string{"city", "도시"}},
	{"company", []string{"company", "business"}},
	{"ip", []string{"ip"}},
	{"url", []string{"url"}},
	{"title", []string{"title", "subject", "제목"}},
	{"description", []string{"description", "text", "message", "설명"}},
	{"name", []string{"name", "이름", "성명"}},
	{"id", []string{"id", "sequence", "index", "number"}},
}

// DecodeName splits a column name on underscores and spaces and expands known
// abbreviations, e.g. "usr_reg_dt" -> "user registered date".
func DecodeName(colName string) string {
	parts := strings.FieldsFunc(strings.ToLower(colName), func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, part := range parts {
		if full, ok := abbreviations[part]; ok {
			parts[i] = full
		}
	}
	return strings.Join(parts, " ")
}

// AnalyzeMeaning guesses what a column holds from its name and an optional
// free-text comment. Unknown columns get "text".
func AnalyzeMeaning(colName, comment string) string {
	words := strings.Fields(strings.ToLower(comment) + " " + DecodeName(colName))

	for _, rule := range meaningRules {
		for _, kw := range rule.keywords {
			for _, w := range words {
				// short keywords must match a whole word ("ip" in "zip" is not an ip)
				if w == kw || (len(kw) > 3 && strings.Contains(w, kw)) {
					return rule.meaning
				}
			}
		}
	}
	return "text"
}
