// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dto

import (
	"strconv"

	"github.com/blinklabs-io/vkwire/internal/textutil"
	"github.com/blinklabs-io/vkwire/tree"
)

// DefaultUserPhoto50 is the placeholder avatar for users without photo_50
const DefaultUserPhoto50 = "https://vk.com/images/camera_50.png"

// Deactivation states reported in "deactivated"
const (
	DeactivatedDeleted = "deleted"
	DeactivatedBanned  = "banned"
)

// Place is a city or a country reference
type Place struct {
	ID    int
	Title string
}

// NewPlaceFromNode decodes a {"id", "title"} object
func NewPlaceFromNode(n tree.Node) (Place, error) {
	obj, err := requireObject(n, "place")
	if err != nil {
		return Place{}, err
	}
	return Place{
		ID:    tree.OptInt(obj, "id", 0),
		Title: tree.OptString(obj, "title", ""),
	}, nil
}

func optPlace(obj *tree.Object, key string) *Place {
	nested, ok := tree.HasObject(obj, key)
	if !ok {
		return nil
	}
	ret, _ := NewPlaceFromNode(nested)
	return &ret
}

// UserCounters holds profile counters. Counters the server omitted are -1.
type UserCounters struct {
	Albums        int
	Videos        int
	Audios        int
	Photos        int
	Notes         int
	Friends       int
	Groups        int
	OnlineFriends int
	MutualFriends int
	Followers     int
	Pages         int
	Gifts         int
	Articles      int
}

// NoCounter marks a counter the server did not report
const NoCounter = -1

func newUserCounters(obj *tree.Object) *UserCounters {
	return &UserCounters{
		Albums:        tree.OptInt(obj, "albums", NoCounter),
		Videos:        tree.OptInt(obj, "videos", NoCounter),
		Audios:        tree.OptInt(obj, "audios", NoCounter),
		Photos:        tree.OptInt(obj, "photos", NoCounter),
		Notes:         tree.OptInt(obj, "notes", NoCounter),
		Friends:       tree.OptInt(obj, "friends", NoCounter),
		Groups:        tree.OptInt(obj, "groups", NoCounter),
		OnlineFriends: tree.OptInt(obj, "online_friends", NoCounter),
		MutualFriends: tree.OptInt(obj, "mutual_friends", NoCounter),
		Followers:     tree.OptInt(obj, "followers", NoCounter),
		Pages:         tree.OptInt(obj, "pages", NoCounter),
		Gifts:         tree.OptInt(obj, "gifts", NoCounter),
		Articles:      tree.OptInt(obj, "articles", NoCounter),
	}
}

// Relative is one entry of a user's family list
type Relative struct {
	ID   int64
	Name string
	Type string
}

// NewRelativeFromNode decodes one relative
func NewRelativeFromNode(n tree.Node) (Relative, error) {
	obj, err := requireObject(n, "relative")
	if err != nil {
		return Relative{}, err
	}
	return Relative{
		ID:   tree.OptLong(obj, "id", 0),
		Name: tree.OptString(obj, "name", ""),
		Type: tree.OptString(obj, "type", ""),
	}, nil
}

// Occupation is the current school, university or employer
type Occupation struct {
	Type string
	ID   int64
	Name string
}

// University is one entry of the education list
type University struct {
	ID             int
	Name           string
	FacultyName    string
	ChairName      string
	Graduation     int
	EducationForm  string
	EducationState string
}

// NewUniversityFromNode decodes one university entry
func NewUniversityFromNode(n tree.Node) (University, error) {
	obj, err := requireObject(n, "university")
	if err != nil {
		return University{}, err
	}
	return University{
		ID:             tree.OptInt(obj, "id", 0),
		Name:           tree.OptString(obj, "name", ""),
		FacultyName:    tree.OptString(obj, "faculty_name", ""),
		ChairName:      tree.OptString(obj, "chair_name", ""),
		Graduation:     tree.OptInt(obj, "graduation", 0),
		EducationForm:  tree.OptString(obj, "education_form", ""),
		EducationState: tree.OptString(obj, "education_status", ""),
	}, nil
}

// School is one entry of the school list
type School struct {
	ID            string
	Name          string
	YearFrom      int
	YearTo        int
	YearGraduated int
	Class         string
	Speciality    string
}

// NewSchoolFromNode decodes one school entry
func NewSchoolFromNode(n tree.Node) (School, error) {
	obj, err := requireObject(n, "school")
	if err != nil {
		return School{}, err
	}
	return School{
		ID:            tree.OptString(obj, "id", ""),
		Name:          tree.OptString(obj, "name", ""),
		YearFrom:      tree.OptInt(obj, "year_from", 0),
		YearTo:        tree.OptInt(obj, "year_to", 0),
		YearGraduated: tree.OptInt(obj, "year_graduated", 0),
		Class:         tree.OptString(obj, "class", ""),
		Speciality:    tree.OptString(obj, "speciality", ""),
	}, nil
}

// Career is one entry of the job history
type Career struct {
	GroupID  int64
	Company  string
	From     int
	Until    int
	Position string
}

// NewCareerFromNode decodes one career entry
func NewCareerFromNode(n tree.Node) (Career, error) {
	obj, err := requireObject(n, "career")
	if err != nil {
		return Career{}, err
	}
	return Career{
		GroupID:  tree.OptLong(obj, "group_id", 0),
		Company:  tree.OptString(obj, "company", ""),
		From:     tree.OptInt(obj, "from", 0),
		Until:    tree.OptInt(obj, "until", 0),
		Position: tree.OptString(obj, "position", ""),
	}, nil
}

// Personal holds the "life position" block of a profile
type Personal struct {
	Political  int
	Religion   string
	InspiredBy string
	PeopleMain int
	LifeMain   int
	Smoking    int
	Alcohol    int
	Langs      []string
}

// User is a user profile
type User struct {
	ID                     int64
	FirstName              string
	LastName               string
	ScreenName             string
	Nickname               string
	Domain                 string
	MaidenName             string
	Sex                    int
	Online                 bool
	OnlineMobile           bool
	OnlineApp              int
	Photo50                string
	Photo100               string
	Photo200               string
	PhotoMax               string
	PhotoMaxOrig           string
	Photo200Orig           string
	Photo400Orig           string
	PhotoID                string
	LastSeen               int64
	Platform               int
	Status                 string
	StatusAudio            *Audio
	Activity               string
	BirthDate              string
	HomeTown               string
	City                   *Place
	Country                *Place
	Universities           []University
	Schools                []School
	Careers                []Career
	Personal               *Personal
	Occupation             *Occupation
	Counters               *UserCounters
	Relation               int
	RelationPartner        *User
	Relatives              []Relative
	Site                   string
	Skype                  string
	Twitter                string
	Instagram              string
	Facebook               string
	MobilePhone            string
	HomePhone              string
	About                  string
	Activities             string
	Books                  string
	Games                  string
	Interests              string
	Movies                 string
	Music                  string
	Quotes                 string
	TV                     string
	CanPost                bool
	CanSeeAllPosts         bool
	CanSeeAudio            bool
	CanWritePrivateMessage bool
	CanSendFriendRequest   bool
	CanAccessClosed        bool
	IsClosed               bool
	IsDeleted              bool
	IsBanned               bool
	Blacklisted            bool
	BlacklistedByMe        bool
	Verified               bool
	HasMobile              bool
	IsFavorite             bool
	IsSubscribed           bool
	IsFriend               bool
	FriendStatus           int
	WallDefaultOwner       bool
	Timezone               int
	Role                   string
}

// NewUserFromNode decodes a user using the default Decoder
func NewUserFromNode(n tree.Node) (*User, error) {
	return defaultDecoder.DecodeUser(n)
}

// DecodeUser decodes a user profile, including a nested relation partner
func (d *Decoder) DecodeUser(n tree.Node) (*User, error) {
	return d.decodeUser(n, 0)
}

func (d *Decoder) decodeUser(n tree.Node, depth int) (*User, error) {
	if err := d.checkDepth(depth, "user"); err != nil {
		return nil, err
	}
	obj, err := requireObject(n, "user")
	if err != nil {
		return nil, err
	}
	id := tree.OptLong(obj, "id", 0)
	if id == 0 {
		id = tree.OptLong(obj, "user_id", 0)
	}
	deactivated := tree.OptString(obj, "deactivated", "")
	universities, _ := obj.Get("universities")
	schools, _ := obj.Get("schools")
	careers, _ := obj.Get("career")
	relatives, _ := obj.Get("relatives")
	ret := &User{
		ID:                     id,
		FirstName:              tree.OptString(obj, "first_name", ""),
		LastName:               tree.OptString(obj, "last_name", ""),
		ScreenName:             tree.OptString(obj, "screen_name", "id"+strconv.FormatInt(id, 10)),
		Nickname:               tree.OptString(obj, "nickname", ""),
		Domain:                 tree.OptString(obj, "domain", ""),
		MaidenName:             tree.OptString(obj, "maiden_name", ""),
		Sex:                    tree.OptInt(obj, "sex", 0),
		Online:                 tree.OptBool(obj, "online"),
		OnlineMobile:           tree.OptBool(obj, "online_mobile"),
		OnlineApp:              tree.OptInt(obj, "online_app", 0),
		Photo50:                tree.OptString(obj, "photo_50", DefaultUserPhoto50),
		Photo100:               tree.OptString(obj, "photo_100", ""),
		Photo200:               tree.OptString(obj, "photo_200", ""),
		PhotoMax:               tree.OptString(obj, "photo_max", ""),
		PhotoMaxOrig:           tree.OptString(obj, "photo_max_orig", ""),
		Photo200Orig:           tree.OptString(obj, "photo_200_orig", ""),
		Photo400Orig:           tree.OptString(obj, "photo_400_orig", ""),
		PhotoID:                tree.OptString(obj, "photo_id", ""),
		Status:                 textutil.Unescape(tree.OptString(obj, "status", "")),
		Activity:               tree.OptString(obj, "activity", ""),
		BirthDate:              tree.OptString(obj, "bdate", ""),
		HomeTown:               tree.OptString(obj, "home_town", ""),
		City:                   optPlace(obj, "city"),
		Country:                optPlace(obj, "country"),
		Universities:           tree.ParseArray(universities, nil, NewUniversityFromNode),
		Schools:                tree.ParseArray(schools, nil, NewSchoolFromNode),
		Careers:                tree.ParseArray(careers, nil, NewCareerFromNode),
		Relation:               tree.OptInt(obj, "relation", 0),
		Relatives:              tree.ParseArray(relatives, []Relative{}, NewRelativeFromNode),
		Site:                   tree.OptString(obj, "site", ""),
		Skype:                  tree.OptString(obj, "skype", ""),
		Twitter:                tree.OptString(obj, "twitter", ""),
		Instagram:              tree.OptString(obj, "instagram", ""),
		Facebook:               tree.OptString(obj, "facebook", ""),
		MobilePhone:            tree.OptString(obj, "mobile_phone", ""),
		HomePhone:              tree.OptString(obj, "home_phone", ""),
		About:                  tree.OptString(obj, "about", ""),
		Activities:             tree.OptString(obj, "activities", ""),
		Books:                  tree.OptString(obj, "books", ""),
		Games:                  tree.OptString(obj, "games", ""),
		Interests:              tree.OptString(obj, "interests", ""),
		Movies:                 tree.OptString(obj, "movies", ""),
		Music:                  tree.OptString(obj, "music", ""),
		Quotes:                 tree.OptString(obj, "quotes", ""),
		TV:                     tree.OptString(obj, "tv", ""),
		CanPost:                tree.OptBool(obj, "can_post"),
		CanSeeAllPosts:         tree.OptBool(obj, "can_see_all_posts"),
		CanSeeAudio:            tree.OptBool(obj, "can_see_audio"),
		CanWritePrivateMessage: tree.OptBool(obj, "can_write_private_message"),
		CanSendFriendRequest:   tree.OptBool(obj, "can_send_friend_request"),
		CanAccessClosed:        tree.OptBool(obj, "can_access_closed"),
		IsClosed:               tree.OptBool(obj, "is_closed"),
		IsDeleted:              deactivated == DeactivatedDeleted,
		IsBanned:               deactivated == DeactivatedBanned,
		Blacklisted:            tree.OptBool(obj, "blacklisted"),
		BlacklistedByMe:        tree.OptBool(obj, "blacklisted_by_me"),
		Verified:               tree.OptBool(obj, "verified"),
		HasMobile:              tree.OptBool(obj, "has_mobile"),
		IsFavorite:             tree.OptBool(obj, "is_favorite"),
		IsSubscribed:           tree.OptBool(obj, "is_subscribed"),
		IsFriend:               tree.OptBool(obj, "is_friend"),
		FriendStatus:           tree.OptInt(obj, "friend_status", 0),
		WallDefaultOwner:       tree.OptString(obj, "wall_default", "") == "owner",
		Timezone:               tree.OptInt(obj, "timezone", 0),
		Role:                   tree.OptString(obj, "role", ""),
	}
	if lastSeen, ok := tree.HasObject(obj, "last_seen"); ok {
		ret.LastSeen = tree.OptLong(lastSeen, "time", 0)
		ret.Platform = tree.OptInt(lastSeen, "platform", 0)
	}
	if audio, ok := tree.HasObject(obj, "status_audio"); ok {
		ret.StatusAudio, _ = NewAudioFromNode(audio)
	}
	if personal, ok := tree.HasObject(obj, "personal"); ok {
		ret.Personal = &Personal{
			Political:  tree.OptInt(personal, "political", 0),
			Religion:   tree.OptString(personal, "religion", ""),
			InspiredBy: tree.OptString(personal, "inspired_by", ""),
			PeopleMain: tree.OptInt(personal, "people_main", 0),
			LifeMain:   tree.OptInt(personal, "life_main", 0),
			Smoking:    tree.OptInt(personal, "smoking", 0),
			Alcohol:    tree.OptInt(personal, "alcohol", 0),
			Langs:      tree.OptStringArray(personal, "langs", nil),
		}
	}
	if occupation, ok := tree.HasObject(obj, "occupation"); ok {
		ret.Occupation = &Occupation{
			Type: tree.OptString(occupation, "type", ""),
			ID:   tree.OptLong(occupation, "id", 0),
			Name: tree.OptString(occupation, "name", ""),
		}
	}
	if counters, ok := tree.HasObject(obj, "counters"); ok {
		ret.Counters = newUserCounters(counters)
	}
	if partner, ok := tree.HasObject(obj, "relation_partner"); ok {
		relationPartner, err := decodeEntry(func() (*User, error) {
			return d.decodeUser(partner, depth+1)
		})
		if err != nil {
			d.log().Debug(
				"dropping relation partner",
				"user_id", ret.ID,
				"error", err,
			)
		} else {
			ret.RelationPartner = relationPartner
		}
	}
	return ret, nil
}

// FullName returns the first and last name joined by a space
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
