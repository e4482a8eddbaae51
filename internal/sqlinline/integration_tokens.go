package sqlinline

const QSelectIntegrationToken = `--sql 9faf7e89-8ebb-4cf9-8347-07a518535602
select token
from integration_tokens
where provider = $1::text
limit 1;
`

const QUpsertIntegrationToken = `--sql f34cbfa1-cf43-4f20-9293-bd7bbd9488c8
insert into integration_tokens(provider, token, properties, updated_at)
values ($1::text, $2::text, $3::jsonb, now())
on conflict (provider) do update set
  token = excluded.token,
  properties = excluded.properties,
  updated_at = now();
`
