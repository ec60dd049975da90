package cli

// commands is the REPL command table in help order.
func (a *App) commands() []command {
	return []command{
		{names: []string{"register", "signup"}, usage: "register", run: a.Register},
		{names: []string{"login"}, usage: "login", run: a.Login},
		{names: []string{"logout"}, usage: "logout", auth: true, run: a.Logout},
		{names: []string{"whoami"}, usage: "whoami", run: a.Whoami},

		{names: []string{"items", "browse"}, usage: "items [-category c] [-condition c] [-type t] [-location-type t] [-location id] [text]", run: a.Items},
		{names: []string{"item"}, usage: "item <id>", run: a.Item},
		{names: []string{"post-item"}, usage: "post-item", auth: true, run: a.PostItem},
		{names: []string{"edit-item"}, usage: "edit-item <id>", auth: true, run: a.EditItem},
		{names: []string{"exchange"}, usage: "exchange <id>", auth: true, run: a.Exchange},
		{names: []string{"delete-item"}, usage: "delete-item <id>", auth: true, run: a.DeleteItem},

		{names: []string{"tuitions"}, usage: "tuitions [-subject s] [-class c] [-status s] [text]", run: a.Tuitions},
		{names: []string{"my-tuitions"}, usage: "my-tuitions", auth: true, run: a.MyTuitions},
		{names: []string{"tuition"}, usage: "tuition <id>", run: a.Tuition},
		{names: []string{"post-tuition"}, usage: "post-tuition", auth: true, run: a.PostTuition},
		{names: []string{"edit-tuition"}, usage: "edit-tuition <id>", auth: true, run: a.EditTuition},
		{names: []string{"take"}, usage: "take <id>", auth: true, run: a.TakeTuition},
		{names: []string{"complete"}, usage: "complete <id>", auth: true, run: a.CompleteTuition},
		{names: []string{"delete-tuition"}, usage: "delete-tuition <id>", auth: true, run: a.DeleteTuition},

		{names: []string{"conversations", "messages"}, usage: "conversations", auth: true, run: a.Conversations},
		{names: []string{"chat"}, usage: "chat <partnerId> [itemId]", auth: true, run: a.Chat},

		{names: []string{"wishlist"}, usage: "wishlist", auth: true, run: a.Wishlist},
		{names: []string{"wish-add"}, usage: "wish-add <itemId> [notes]", auth: true, run: a.WishAdd},
		{names: []string{"wish-remove"}, usage: "wish-remove <itemId>", auth: true, run: a.WishRemove},
		{names: []string{"wish-note"}, usage: "wish-note <wishlistId> <notes>", auth: true, run: a.WishNote},

		{names: []string{"profile"}, usage: "profile [userId]", auth: true, run: a.Profile},
		{names: []string{"edit-profile"}, usage: "edit-profile", auth: true, run: a.EditProfile},
		{names: []string{"upload"}, usage: "upload <path>", auth: true, run: a.Upload},
		{names: []string{"uploads"}, usage: "uploads", auth: true, run: a.Uploads},
		{names: []string{"borrowed"}, usage: "borrowed", auth: true, run: a.Borrowed},
		{names: []string{"lent"}, usage: "lent", auth: true, run: a.Lent},
		{names: []string{"route"}, usage: "route", run: a.Route},
	}
}
