package sqlinline

const QIncrementDailyCounters = `--sql 3f973135-5264-46c5-a254-98f987de488b
insert into analytics_daily (
  day, ai_requests, images_generated, request_success, request_fail, debug_sessions
) values (
  $1::text, $2::bigint, $3::bigint, $4::bigint, $5::bigint, $6::bigint
) on conflict (day) do update set
  ai_requests = analytics_daily.ai_requests + excluded.ai_requests,
  images_generated = analytics_daily.images_generated + excluded.images_generated,
  request_success = analytics_daily.request_success + excluded.request_success,
  request_fail = analytics_daily.request_fail + excluded.request_fail,
  debug_sessions = analytics_daily.debug_sessions + excluded.debug_sessions,
  updated_at = now();
`

const QStatsSummary = `--sql ebc1b242-65a1-471a-b1f2-8f881d5adfe6
select
  coalesce(sum(ai_requests), 0),
  coalesce(sum(images_generated), 0),
  coalesce(sum(request_success), 0),
  coalesce(sum(request_fail), 0),
  coalesce(sum(debug_sessions), 0)
from analytics_daily;
`

const QStatsByModel = `--sql d0a633eb-7e4f-4e8f-ac30-e286a20385bd
select model, count(*)
from assets
group by model
order by count(*) desc;
`

const QStatsByCountry = `--sql 5e84e6b7-b3c5-415b-909c-924a20d716bd
select country, count(*)
from assets
where country <> ''
group by country
order by count(*) desc
limit $1::int;
`
